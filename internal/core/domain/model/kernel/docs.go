// Package kernel provides core domain primitives for the restaurant system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Money: An exact-arithmetic value object for prices and totals
//   - OrderID / OrderIDSequence: Monotonic integer order identity with a
//     linearizable allocator
//   - StaffID: A UUID-backed value object identifying staff members
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
