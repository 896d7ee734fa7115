// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with its owned Lines and
// the order status state machine.
//
// The package includes:
//   - Order: the aggregate root owning identity, client reference, lines, and total
//   - Line: a single order position with a quantity and a unit-price snapshot
//   - Status: a table-driven state machine enforcing valid status transitions
//
// Key business rules:
//   - An order must reference a client and own at least one line
//   - The total is derived from the lines at admission and never taken from input
//   - Status follows Pending -> Validated -> Preparing -> Shipped -> Delivered,
//     with Cancelled reachable from every non-terminal state except Shipped
//   - Delivery completion may force an order into Delivered through
//     Order.ForceDeliver, bypassing the table; the bypass is explicit and
//     returns the skipped-over status
package order
