package dataprocessing

import (
	"log/slog"
	"sort"
	"strconv"

	"lottoscope/pkg/contracts/domain"
)

// Consolidate merges per-file draw slices into one deduplicated history.
//
// Batches are applied in input order and a later batch's draw for the same
// contest overwrites an earlier one - no cross-validation between
// conflicting sources. The merged history is sorted newest-first, which is
// the ordering every downstream recency computation assumes. An empty merge
// yields a *NoValidDrawsError.
func Consolidate(batches [][]domain.Draw, profile domain.Profile) ([]domain.Draw, error) {
	merged := make(map[string]domain.Draw)
	for _, batch := range batches {
		for _, draw := range batch {
			merged[draw.ContestID] = draw
		}
	}

	if len(merged) == 0 {
		return nil, &NoValidDrawsError{DrawSize: profile.DrawSize, TotalNumbers: profile.TotalNumbers}
	}

	history := make([]domain.Draw, 0, len(merged))
	for _, draw := range merged {
		history = append(history, draw)
	}

	sort.Slice(history, func(i, j int) bool {
		if !history[i].Date.Equal(history[j].Date) {
			return history[i].Date.After(history[j].Date)
		}
		return contestLess(history[j].ContestID, history[i].ContestID)
	})

	slog.Info("consolidated draw history",
		slog.Int("files", len(batches)),
		slog.Int("draws", len(history)))
	return history, nil
}

// contestLess orders contest IDs numerically when both sides are numeric,
// which they almost always are, and lexically otherwise.
func contestLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
