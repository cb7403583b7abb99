package meld

import (
	"context"
	"log/slog"
	"strings"
)

// TraceFunc observes the entries of every evaluation. It runs after scoring
// is complete and cannot change the Result.
type TraceFunc func(Entry)

// LogTracer returns a TraceFunc writing one debug record per entry to logger.
func LogTracer(logger *slog.Logger) TraceFunc {
	return func(e Entry) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		cards := make([]string, len(e.Cards))
		for i, c := range e.Cards {
			cards[i] = c.String()
		}
		logger.Debug("meld evaluated",
			"meld", e.Name,
			"points", e.Points,
			"completion", e.Completion,
			"cards", strings.Join(cards, " "),
			"superseded_by", e.SupersededBy,
		)
	}
}
