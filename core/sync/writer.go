package sync

import (
	"chain-sync/core/jsonio"

	"go.uber.org/zap"
)

// FanOut writes one merged value to every declared destination. Each
// destination is written independently: a failure on one is reported for
// that path alone and does not touch sibling writes. Duplicated
// destinations are intentional compatibility copies, not a bug.
func FanOut(log *zap.Logger, value any, dests ...string) []Outcome {
	outs := make([]Outcome, 0, len(dests))
	for _, dest := range dests {
		if err := jsonio.Save(dest, value); err != nil {
			log.Error("write failed", zap.String("path", dest), zap.Error(err))
			outs = append(outs, Outcome{Resource: dest, Status: StatusFailed, Reason: err.Error()})
			continue
		}
		log.Debug("wrote merged resource", zap.String("path", dest))
		outs = append(outs, Outcome{Resource: dest, Status: StatusMerged})
	}
	return outs
}
