package common

const (
	RedisStreamSignalGenerated = "signal.generated"

	RedisKeyNewsBatchPrefix = "news:batch:"

	SignalActionBuy  = "BUY"
	SignalActionHold = "HOLD"
	SignalActionSell = "SELL"
)
