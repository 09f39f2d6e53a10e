// Package order provides the order ledger aggregate of the marketplace.
// It implements the Order aggregate root with lifecycle management, the
// Status state machine, and exact commission arithmetic.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, totals, and lifecycle
//   - LineItem: a value object for one product line with captured unit price
//   - Status: a state machine enforcing valid order transitions
//
// Key business rules:
//   - Orders follow Pending -> Paid -> Accepted -> Completed, with Paid -> Rejected
//     as the vendor's alternative and Cancelled reachable from any non-terminal state
//   - Completed, Rejected, and Cancelled are terminal and retained for audit
//   - The total price is fixed at submission: line totals plus delivery charge
//   - Commission and net are pure derivations of the total (10%, round-half-up,
//     commission + net reproduces the total exactly)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
