// Package hashrate derives an approximate network hash rate from a block window.
package hashrate

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// ErrInvalidWindowState is returned when the window yields a non-positive mean time.
var ErrInvalidWindowState = errors.New("hashrate: invalid window state")

// Estimate returns difficulty(newest) / meanSeconds where meanSeconds is
// sum(timestamps) / len(blocks) / 1000 in integer arithmetic.
//
// The mean is taken over raw timestamps rather than inter-block deltas, so the
// result is an approximation kept for compatibility with existing dashboards.
// An empty window yields 0 without error.
func Estimate(blocks []model.Block) (uint64, error) {
	if len(blocks) == 0 {
		return 0, nil
	}

	var sum int64
	for _, b := range blocks {
		sum += b.Timestamp
	}

	meanSeconds := sum / int64(len(blocks)) / 1000
	if meanSeconds <= 0 {
		return 0, ErrInvalidWindowState
	}

	return blocks[len(blocks)-1].Difficulty / uint64(meanSeconds), nil
}
