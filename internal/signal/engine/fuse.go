package engine

import (
	"math"

	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/pkg/common"
)

const maxReasons = 3

// Decision is the outcome of fusing sentiment and technical readings for one
// symbol.
type Decision struct {
	Action     string
	Confidence float64
	Score      float64
	Reasoning  []string
}

// Fuse combines a sentiment summary and a technical snapshot into a trading
// decision. The scoring rules and thresholds are fixed contracts:
//   - average sentiment beyond ±0.2 contributes ±2
//   - RSI strictly below 30 / above 70 contributes ±2 (30 and 70 themselves
//     trigger neither branch)
//   - MACD has no neutral case: anything not strictly positive, including
//     exactly zero, counts as bearish (-1)
//   - 1-day price change beyond ±2% contributes ±1
//   - volume ratio above 1.5 amplifies the running score by sign(score)*0.5,
//     a no-op when the score is zero
//
// Reasons are reported in rule order, capped at three.
func Fuse(sentiment dto.SentimentSummary, technical dto.TechnicalSnapshot) Decision {
	var score float64
	var reasons []string

	if sentiment.AverageSentiment > 0.2 {
		score += 2
		reasons = append(reasons, "Positive news sentiment")
	} else if sentiment.AverageSentiment < -0.2 {
		score -= 2
		reasons = append(reasons, "Negative news sentiment")
	}

	if technical.RSI < 30 {
		score += 2
		reasons = append(reasons, "RSI indicates oversold condition")
	} else if technical.RSI > 70 {
		score -= 2
		reasons = append(reasons, "RSI indicates overbought condition")
	}

	if technical.MACD > 0 {
		score += 1
		reasons = append(reasons, "MACD shows bullish momentum")
	} else {
		score -= 1
		reasons = append(reasons, "MACD shows bearish momentum")
	}

	if technical.PriceChange1Day > 2 {
		score += 1
		reasons = append(reasons, "Strong recent price momentum")
	} else if technical.PriceChange1Day < -2 {
		score -= 1
		reasons = append(reasons, "Weak recent price momentum")
	}

	if technical.VolumeRatio > 1.5 {
		score += sign(score) * 0.5
		reasons = append(reasons, "High volume confirms trend")
	}

	var action string
	var confidence float64
	switch {
	case score >= 3:
		action = common.SignalActionBuy
		confidence = math.Min(0.9, 0.6+(score-3)*0.1)
	case score <= -3:
		action = common.SignalActionSell
		confidence = math.Min(0.9, 0.6+math.Abs(score+3)*0.1)
	default:
		action = common.SignalActionHold
		confidence = 0.5 + math.Abs(score)*0.05
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return Decision{
		Action:     action,
		Confidence: Round2(confidence),
		Score:      score,
		Reasoning:  reasons,
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
