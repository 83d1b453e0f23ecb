package telegram

import (
	"fmt"
	"strings"
	"time"
)

// SignalAlert carries the fields rendered into a Telegram signal message.
type SignalAlert struct {
	Symbol     string
	Action     string
	Confidence float64
	Price      float64
	Reasoning  []string
	Timestamp  time.Time
}

// FormatSignalAlertMessage formats a trading signal into a Markdown message.
func FormatSignalAlertMessage(alert SignalAlert) string {
	var icon string
	switch alert.Action {
	case "BUY":
		icon = "📈"
	case "SELL":
		icon = "📉"
	default:
		icon = "😐"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s *%s Signal: %s*\n", icon, alert.Action, alert.Symbol))
	b.WriteString(fmt.Sprintf("💰 *Price:* %.2f\n", alert.Price))
	b.WriteString(fmt.Sprintf("🎯 *Confidence:* %.0f%%\n", alert.Confidence*100))
	if len(alert.Reasoning) > 0 {
		b.WriteString("💬 *Reasons:*\n")
		for _, reason := range alert.Reasoning {
			b.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}
	b.WriteString(fmt.Sprintf("🕐 %s", alert.Timestamp.Format(time.RFC3339)))
	return b.String()
}

// FormatErrorAlertMessage formats an operational error into a Markdown message.
func FormatErrorAlertMessage(at time.Time, message string) string {
	var b strings.Builder
	b.WriteString("🚨 *Signal Service Error*\n")
	b.WriteString(fmt.Sprintf("💬 %s\n", message))
	b.WriteString(fmt.Sprintf("🕐 %s", at.Format(time.RFC3339)))
	return b.String()
}
