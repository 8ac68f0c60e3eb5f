// Package stock implements the instrument quote simulator.
//
// A Book holds a fixed set of simulated instruments. Each Advance call picks
// one instrument uniformly at random, evolves its price with a discretized
// geometric Brownian motion step, resamples the bid/ask spread, and
// accumulates traded volume. Steps are Markovian: only the current price
// feeds the next one.
package stock
