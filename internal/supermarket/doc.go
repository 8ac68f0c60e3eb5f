// Package supermarket implements the retail point-of-sale simulation.
//
// The simulation:
//   - Samples products from a fixed three-level catalog hierarchy
//   - Derives unit prices deterministically from product names (charm-priced,
//     always ending in .49 or .99) and memoizes them in a PriceBook
//   - Emits line-item sales grouped into basket sessions with a shared
//     transaction identity, store, and customer
//
// A basket session emits exactly its target number of items and is then
// replaced; identifiers never change mid-session.
package supermarket
