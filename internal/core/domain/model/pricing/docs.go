// Package pricing models the per-shop weight tiers used to price laundry by
// the kilo.
//
// A Tier covers the closed weight range [min, max] and carries a price per
// kilo. Tiers of one shop must not overlap; tiers that only touch at a
// boundary are allowed, and a weight on the shared boundary belongs to the
// tier that starts there.
package pricing
