// Package order implements the laundry order ("transaction") aggregate and
// its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the customer snapshot, cart, amounts
//     and delivery details of one order
//   - Cart: ordered service and item lines, validated once at placement
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - total = subtotal + delivery fee - voucher discount, computed here only
//   - Pending -> Processing -> Completed, and Pending or Processing -> Cancelled
//   - a per-kilo price can be quoted only while Pending and moves the order
//     to Processing
//   - cancelling a cancelled order is a conflict and changes nothing
package order
