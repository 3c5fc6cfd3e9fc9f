package analytics

import (
	"sort"

	"lottoscope/pkg/contracts/domain"
)

// Aggregate computes the full descriptive statistics bundle over a
// consolidated draw history. It is a pure function of its inputs: the
// history is expected newest-first (the consolidator's ordering) and is
// never mutated.
//
// The five aggregates are computed independently - none depends on another's
// rounding or ordering.
func Aggregate(history []domain.Draw, profile domain.Profile) *domain.Statistics {
	return &domain.Statistics{
		TotalDraws: len(history),
		Frequency:  frequencyTable(history, profile),
		TopPairs:   topPairs(history, 10),
		Parity:     parityDistribution(history),
		Intervals:  intervalStats(history, profile),
		Repeated:   repeatedDraws(history),
	}
}

// frequencyTable counts occurrences per number. Every number in the game
// range gets an entry, zero-filled when never drawn; presentation order is
// count descending with ties broken by number ascending.
func frequencyTable(history []domain.Draw, profile domain.Profile) []domain.NumberFrequency {
	counts := make([]int, profile.TotalNumbers+1)
	for _, draw := range history {
		for _, n := range draw.Numbers {
			counts[n]++
		}
	}

	table := make([]domain.NumberFrequency, 0, profile.TotalNumbers)
	for n := 1; n <= profile.TotalNumbers; n++ {
		table = append(table, domain.NumberFrequency{Number: n, Count: counts[n]})
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Number < table[j].Number
	})
	return table
}

// topPairs counts every unordered 2-combination within each draw and
// returns the limit most frequent pairs. Ties keep encounter order.
func topPairs(history []domain.Draw, limit int) []domain.PairFrequency {
	type pairKey struct{ a, b int }
	counts := make(map[pairKey]int)
	var order []pairKey

	for _, draw := range history {
		nums := draw.Numbers
		for i := 0; i < len(nums); i++ {
			for j := i + 1; j < len(nums); j++ {
				key := pairKey{a: nums[i], b: nums[j]}
				if _, seen := counts[key]; !seen {
					order = append(order, key)
				}
				counts[key]++
			}
		}
	}

	pairs := make([]domain.PairFrequency, 0, len(order))
	for _, key := range order {
		pairs = append(pairs, domain.PairFrequency{A: key.a, B: key.b, Count: counts[key]})
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// parityDistribution buckets draws by their even/odd composition, most
// common bucket first.
func parityDistribution(history []domain.Draw) []domain.ParityBucket {
	type parityKey struct{ even, odd int }
	counts := make(map[parityKey]int)

	for _, draw := range history {
		even := 0
		for _, n := range draw.Numbers {
			if n%2 == 0 {
				even++
			}
		}
		key := parityKey{even: even, odd: len(draw.Numbers) - even}
		counts[key]++
	}

	buckets := make([]domain.ParityBucket, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, domain.ParityBucket{Even: key.even, Odd: key.odd, Count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Even < buckets[j].Even
	})
	return buckets
}

// numberState is the per-number running state of the interval pass, held in
// fixed-size arenas indexed by number instead of maps with optional lookups.
type numberState struct {
	lastSeen int // chronological index of the most recent occurrence, -1 if none
	gapSum   int
	gapCount int
	maxGap   int
}

// intervalStats processes the history in chronological order (the reverse
// of the stored newest-first order) and records the gap between consecutive
// occurrences of each number.
func intervalStats(history []domain.Draw, profile domain.Profile) []domain.IntervalStat {
	states := make([]numberState, profile.TotalNumbers+1)
	for i := range states {
		states[i].lastSeen = -1
	}

	total := len(history)
	for chron := 0; chron < total; chron++ {
		draw := history[total-1-chron]
		for _, n := range draw.Numbers {
			state := &states[n]
			if state.lastSeen >= 0 {
				gap := chron - state.lastSeen
				state.gapSum += gap
				state.gapCount++
				if gap > state.maxGap {
					state.maxGap = gap
				}
			}
			state.lastSeen = chron
		}
	}

	stats := make([]domain.IntervalStat, 0, profile.TotalNumbers)
	for n := 1; n <= profile.TotalNumbers; n++ {
		state := states[n]
		stat := domain.IntervalStat{Number: n, MaxDelay: state.maxGap}

		if state.lastSeen < 0 {
			stat.CurrentDelay = total
		} else {
			stat.CurrentDelay = total - 1 - state.lastSeen
		}
		if state.gapCount > 0 {
			stat.AverageInterval = float64(state.gapSum) / float64(state.gapCount)
		}
		stats = append(stats, stat)
	}
	return stats
}

// repeatedDraws groups draws by their exact numbers combination and reports
// every combination drawn under more than one contest id, contests listed in
// chronological order.
func repeatedDraws(history []domain.Draw) []domain.RepeatedDraw {
	groups := make(map[string][]int) // key -> chronological history indexes
	var order []string

	for chron := 0; chron < len(history); chron++ {
		draw := history[len(history)-1-chron]
		key := draw.Key()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], len(history)-1-chron)
	}

	var repeated []domain.RepeatedDraw
	for _, key := range order {
		indexes := groups[key]
		if len(indexes) < 2 {
			continue
		}
		entry := domain.RepeatedDraw{Numbers: history[indexes[0]].Numbers}
		for _, idx := range indexes {
			entry.ContestIDs = append(entry.ContestIDs, history[idx].ContestID)
		}
		repeated = append(repeated, entry)
	}
	return repeated
}
