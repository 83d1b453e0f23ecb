package risk

// Metrics holds the derived risk figures for one prediction.
type Metrics struct {
	Volatility float64
	VaR95      float64
	Level      string
}

// Risk level labels.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// Assess derives volatility, 95% value-at-risk and a coarse risk level from
// an expected return. Volatility is proxied as 1.5x the absolute expected
// return and VaR95 uses the 1.65 sigma normal quantile.
func Assess(expectedReturn float64) Metrics {
	volatility := abs(expectedReturn) * 1.5
	var95 := expectedReturn - 1.65*volatility

	level := LevelLow
	if var95 < -0.05 {
		level = LevelHigh
	} else if var95 < -0.02 {
		level = LevelModerate
	}

	return Metrics{
		Volatility: volatility,
		VaR95:      var95,
		Level:      level,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
