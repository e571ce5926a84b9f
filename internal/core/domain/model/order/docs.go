// Package order provides domain entities and business logic for order
// management in the restaurant system. It implements the Order aggregate
// root with lifecycle management, an append-only status history, and
// synchronous subscriber fan-out.
//
// The package includes:
//   - Order: The aggregate root holding identity, items, total, status,
//     history and attached subscribers
//   - Status: The order lifecycle state with its fixed linear ordering
//   - StatusChange: One immutable audit entry per accepted transition
//   - LineItem: A priced position with its price frozen at build time
//   - Subscriber: The notification callback contract
//
// Key business rules:
//   - The lifecycle order is Pending -> Preparing -> Ready -> Served -> Paid
//   - Re-setting the current status records nothing and notifies nobody
//   - The record accepts any transition between distinct statuses; the
//     linear ordering is enforced as policy by the dispatch orchestrator
//   - Reaching Paid stamps the completion timestamp exactly once
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
