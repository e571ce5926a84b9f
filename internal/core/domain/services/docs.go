// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the restaurant system. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PricingEngine: side-effect-free total computation under a swappable
//     pricing policy plus the customer's own loyalty discount
//   - PricingPolicy and its closed set of implementations
//   - StaffDirectory: first-fit, capacity-aware staff assignment
//
// Domain services coordinate between aggregates following Domain-Driven
// Design principles.
package services
