// Package generator defines the pluggable record source used by the stream
// driver.
//
// A Generator produces one serialized record per call and can describe its
// internal state on demand. Two modules are built in:
//   - "stock": simulated instrument quotes driven by geometric Brownian motion
//   - "supermarket": retail line-item sales grouped into basket sessions
//
// Generators never fail mid-stream; when there is nothing to produce or a
// record cannot be serialized they emit the sentinel record instead.
package generator
