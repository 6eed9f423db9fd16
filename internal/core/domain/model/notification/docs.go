// Package notification models the durable messages sent to customers and
// shops, such as a per-kilo price quote awaiting the customer's answer.
//
// A notification starts pending and unread. Accepting or declining it is
// final and idempotent: repeating the same answer is a no-op, giving the
// opposite answer is a conflict.
package notification
