package risk

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// SimulationResult summarizes the simulated price distribution at the end of
// the horizon.
type SimulationResult struct {
	ExpectedPrice float64
	WorstCase5Pct float64
	BestCase95Pct float64
}

// Simulator runs geometric Brownian motion price simulations. It is safe for
// concurrent use; the seeded rng is shared across calls and mutex-guarded.
type Simulator struct {
	Simulations int
	Days        int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a Simulator with the given path count and horizon.
func NewSimulator(simulations, days int, seed int64) *Simulator {
	return &Simulator{
		Simulations: simulations,
		Days:        days,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Simulate runs the GBM paths and returns the expected final price and the
// 5th/95th percentile outcomes. Volatility and expected return are annualized
// fractions; one step is a trading day (dt = 1/252).
func (s *Simulator) Simulate(currentPrice, expectedReturn, volatility float64) SimulationResult {
	const dt = 1.0 / 252

	finalPrices := make([]float64, s.Simulations)
	drift := (expectedReturn - 0.5*volatility*volatility) * dt
	diffusion := volatility * math.Sqrt(dt)

	s.mu.Lock()
	for i := 0; i < s.Simulations; i++ {
		price := currentPrice
		for t := 1; t < s.Days; t++ {
			price *= math.Exp(drift + diffusion*s.rng.NormFloat64())
		}
		finalPrices[i] = price
	}
	s.mu.Unlock()

	sort.Float64s(finalPrices)

	var sum float64
	for _, p := range finalPrices {
		sum += p
	}

	return SimulationResult{
		ExpectedPrice: sum / float64(s.Simulations),
		WorstCase5Pct: percentile(finalPrices, 5),
		BestCase95Pct: percentile(finalPrices, 95),
	}
}

// percentile returns the pth percentile of sorted values using linear
// interpolation between ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
