// Package staff provides the StaffMember aggregate and the closed Role set
// for the restaurant system.
//
// The package includes:
//   - StaffMember: duty status plus a capacity-bounded set of assigned orders
//   - Role: Server, Cook and Supervisor, each with a distinct capacity
//   - WorkloadLevel: light/moderate/heavy classification for reporting
//
// Key business rules:
//   - A member's assignment count never exceeds the role capacity
//   - Check-then-assign is atomic per member under concurrent dispatch
//   - Completing an order frees a slot and counts toward the daily total
package staff
