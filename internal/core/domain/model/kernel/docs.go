// Package kernel provides the domain primitives shared by the order, pricing
// and notification models: validated UUID identifiers and the fixed-point
// helpers used for money and weights (github.com/shopspring/decimal).
//
// The primitives are immutable and safe for concurrent use.
package kernel
