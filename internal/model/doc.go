// Package model defines shared data types used across the fluxgen generators.
//
// Conventions:
//   - Prices: float64 dollars (retail unit prices are charm-rounded to .49 or .99)
//   - Timestamps: int64 seconds since Unix epoch
//   - IDs: "STK<n>" for simulated instruments, UUID-backed opaque tokens for
//     transactions and baskets
//
// QuoteRecord and SaleRecord are the interchange shapes handed to the sinks;
// their json tags are the wire contract.
package model
