package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stocksphere-signal/internal/signal/dto"
)

func neutralTechnical() dto.TechnicalSnapshot {
	return dto.TechnicalSnapshot{
		CurrentPrice:    100,
		PriceChange1Day: 0,
		VolumeRatio:     1.0,
		RSI:             50,
		MACD:            0.1,
		Volatility:      20,
	}
}

func TestFuse_AllBullishCapsConfidence(t *testing.T) {
	sentiment := dto.SentimentSummary{AverageSentiment: 0.3}
	technical := dto.TechnicalSnapshot{
		RSI:             25,
		MACD:            0.5,
		PriceChange1Day: 3,
		VolumeRatio:     2.0,
	}

	d := Fuse(sentiment, technical)

	// 2+2+1+1 = 6, amplified to 6.5; confidence min(0.9, 0.6+3.5*0.1) = 0.9.
	assert.Equal(t, "BUY", d.Action)
	assert.Equal(t, 6.5, d.Score)
	assert.Equal(t, 0.9, d.Confidence)
	assert.Equal(t, []string{
		"Positive news sentiment",
		"RSI indicates oversold condition",
		"MACD shows bullish momentum",
	}, d.Reasoning)
}

func TestFuse_NeutralInputsHold(t *testing.T) {
	sentiment := dto.SentimentSummary{}
	technical := dto.TechnicalSnapshot{RSI: 50, MACD: -0.1, PriceChange1Day: 0, VolumeRatio: 1.0}

	d := Fuse(sentiment, technical)

	// Only the bearish MACD branch fires: score -1 -> HOLD at 0.55.
	assert.Equal(t, "HOLD", d.Action)
	assert.Equal(t, -1.0, d.Score)
	assert.Equal(t, 0.55, d.Confidence)
	assert.Equal(t, []string{"MACD shows bearish momentum"}, d.Reasoning)
}

func TestFuse_AllBearishSell(t *testing.T) {
	sentiment := dto.SentimentSummary{AverageSentiment: -0.5}
	technical := dto.TechnicalSnapshot{
		RSI:             80,
		MACD:            -1,
		PriceChange1Day: -3,
		VolumeRatio:     2.0,
	}

	d := Fuse(sentiment, technical)

	// -2-2-1-1 = -6, amplified to -6.5; |score+3| = 3.5 -> capped at 0.9.
	assert.Equal(t, "SELL", d.Action)
	assert.Equal(t, -6.5, d.Score)
	assert.Equal(t, 0.9, d.Confidence)
}

func TestFuse_MACDZeroIsBearish(t *testing.T) {
	technical := neutralTechnical()
	technical.MACD = 0

	d := Fuse(dto.SentimentSummary{}, technical)

	assert.Equal(t, -1.0, d.Score)
	assert.Contains(t, d.Reasoning, "MACD shows bearish momentum")
}

func TestFuse_RSIBoundariesAreExclusive(t *testing.T) {
	for _, rsi := range []float64{30, 70} {
		technical := neutralTechnical()
		technical.RSI = rsi

		d := Fuse(dto.SentimentSummary{}, technical)

		assert.NotContains(t, d.Reasoning, "RSI indicates oversold condition", "rsi=%v", rsi)
		assert.NotContains(t, d.Reasoning, "RSI indicates overbought condition", "rsi=%v", rsi)
	}
}

func TestFuse_SentimentBoundaryIsExclusive(t *testing.T) {
	technical := neutralTechnical()

	d := Fuse(dto.SentimentSummary{AverageSentiment: 0.2}, technical)
	assert.NotContains(t, d.Reasoning, "Positive news sentiment")

	d = Fuse(dto.SentimentSummary{AverageSentiment: -0.2}, technical)
	assert.NotContains(t, d.Reasoning, "Negative news sentiment")
}

func TestFuse_VolumeAmplificationIsNoOpAtZeroScore(t *testing.T) {
	// Sentiment +2 and RSI -2 cancel, MACD +1 and price -1 cancel: score 0.
	sentiment := dto.SentimentSummary{AverageSentiment: 0.3}
	technical := dto.TechnicalSnapshot{
		RSI:             75,
		MACD:            0.5,
		PriceChange1Day: -3,
		VolumeRatio:     2.0,
	}

	d := Fuse(sentiment, technical)

	assert.Equal(t, 0.0, d.Score)
	assert.Equal(t, "HOLD", d.Action)
	assert.Equal(t, 0.5, d.Confidence)
	// The volume reason is appended but falls past the three-entry cap.
	assert.NotContains(t, d.Reasoning, "High volume confirms trend")
	assert.Len(t, d.Reasoning, 3)
}

func TestFuse_ReasoningCappedAtThreeInRuleOrder(t *testing.T) {
	sentiment := dto.SentimentSummary{AverageSentiment: 0.3}
	technical := dto.TechnicalSnapshot{
		RSI:             25,
		MACD:            0.5,
		PriceChange1Day: 3,
		VolumeRatio:     2.0,
	}

	d := Fuse(sentiment, technical)

	// Five rules fire; only the first three survive, in rule order.
	assert.Len(t, d.Reasoning, 3)
	assert.Equal(t, "Positive news sentiment", d.Reasoning[0])
	assert.Equal(t, "RSI indicates oversold condition", d.Reasoning[1])
	assert.Equal(t, "MACD shows bullish momentum", d.Reasoning[2])
}

func TestFuse_Deterministic(t *testing.T) {
	sentiment := dto.SentimentSummary{AverageSentiment: 0.25, SentimentVolatility: 0.1}
	technical := dto.TechnicalSnapshot{
		RSI:             28,
		MACD:            0.2,
		PriceChange1Day: 2.5,
		VolumeRatio:     1.6,
	}

	first := Fuse(sentiment, technical)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Fuse(sentiment, technical))
	}
}

func TestFuse_ConfidenceRoundedToTwoDecimals(t *testing.T) {
	// Score 3.5: BUY with confidence 0.6 + 0.5*0.1 = 0.65 exactly; score 2.5
	// would be HOLD at 0.5 + 2.5*0.05 = 0.625 -> rounded to 0.63.
	sentiment := dto.SentimentSummary{AverageSentiment: 0.3}
	technical := dto.TechnicalSnapshot{
		RSI:             50,
		MACD:            0.5,
		PriceChange1Day: 0,
		VolumeRatio:     2.0,
	}

	d := Fuse(sentiment, technical)

	// 2+1 = 3, amplified to 3.5 -> BUY at 0.65.
	assert.Equal(t, "BUY", d.Action)
	assert.Equal(t, 3.5, d.Score)
	assert.Equal(t, 0.65, d.Confidence)

	technical.VolumeRatio = 1.0
	technical.MACD = -0.5
	d = Fuse(sentiment, technical)

	// 2-1 = 1 -> HOLD at 0.55.
	assert.Equal(t, "HOLD", d.Action)
	assert.Equal(t, 0.55, d.Confidence)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.63, Round2(0.625))
	assert.Equal(t, 0.9, Round2(0.9000000001))
	assert.Equal(t, -0.63, Round2(-0.625))
}
