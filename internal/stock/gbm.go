package stock

import (
	"math"
	"math/rand"
	"time"
)

// Process evolves a price by one simulated time increment.
type Process interface {
	Next(price, dt float64) float64
}

// GBM implements a discretized geometric Brownian motion step:
//
//	S(t+dt) = S(t) * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*eps)
//
// where eps is a standard normal draw.
type GBM struct {
	Drift      float64 // mu, annualized
	Volatility float64 // sigma, annualized

	rng *rand.Rand
}

// NewGBM creates a GBM process. A nil rng is replaced with a time-seeded one.
func NewGBM(drift, volatility float64, rng *rand.Rand) *GBM {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GBM{
		Drift:      drift,
		Volatility: volatility,
		rng:        rng,
	}
}

// Next returns the price after one increment of dt (in years).
func (g *GBM) Next(price, dt float64) float64 {
	eps := g.rng.NormFloat64()
	return price * math.Exp((g.Drift-0.5*g.Volatility*g.Volatility)*dt+g.Volatility*math.Sqrt(dt)*eps)
}
