// Package services provides domain services that apply business rules across
// several aggregates of the laundry domain.
//
// The package includes:
//   - TierResolver: picks the price tier covering a weight and guards a
//     shop's tier set against overlapping ranges
package services
