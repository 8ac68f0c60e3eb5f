// Package stream implements the cadence loop that drives record generation.
//
// The Driver:
//   - Pulls one record from its Generator per tick
//   - Fans each record out to every configured sink
//   - Counts produced records and failed publishes, never stopping on either
//
// The tick interval derives from the configured records-per-second rate. The
// first record is produced immediately on start.
package stream
