package analytics

import (
	"math/rand"
	"sort"
	"time"

	"lottoscope/pkg/contracts/domain"
)

// SuggestionGenerator derives ticket suggestions from a frequency table.
//
// The randomness source is injected so tests can assert deterministic picks
// under a fixed seed. The generator keeps no state between calls - callers
// regenerate suggestions repeatedly from the same table to get fresh picks.
type SuggestionGenerator struct {
	rng *rand.Rand
}

// NewSuggestionGenerator creates a generator over the given source. A nil
// source falls back to a time-seeded one.
func NewSuggestionGenerator(src rand.Source) *SuggestionGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &SuggestionGenerator{rng: rand.New(src)}
}

// Generate produces the hot, cold and mixed suggestions for one profile.
// freq must be the aggregator's frequency table (count descending). Each
// returned list has exactly BetSize unique ascending numbers.
func (g *SuggestionGenerator) Generate(freq []domain.NumberFrequency, profile domain.Profile) domain.Suggestions {
	hotPool := poolNumbers(freq, profile.HotCount, false)
	coldPool := poolNumbers(freq, profile.ColdCount, true)

	hot := g.fillToBetSize(g.sample(hotPool, profile.BetSize), profile)
	cold := g.fillToBetSize(g.sample(coldPool, profile.BetSize), profile)

	// Mixed: roughly half from the hot pool, the rest from the cold pool,
	// then dedupe and settle on exactly BetSize.
	hotTake := (profile.BetSize + 1) / 2
	mixed := append(g.sample(hotPool, hotTake), g.sample(coldPool, profile.BetSize-hotTake)...)
	mixed = dedupe(mixed)
	if len(mixed) > profile.BetSize {
		g.rng.Shuffle(len(mixed), func(i, j int) { mixed[i], mixed[j] = mixed[j], mixed[i] })
		mixed = mixed[:profile.BetSize]
	}
	mixed = g.fillToBetSize(mixed, profile)

	sort.Ints(hot)
	sort.Ints(cold)
	sort.Ints(mixed)
	return domain.Suggestions{Hot: hot, Cold: cold, Mixed: mixed}
}

// poolNumbers takes the top (or bottom, for cold) size entries of the
// frequency table.
func poolNumbers(freq []domain.NumberFrequency, size int, fromBottom bool) []int {
	if size > len(freq) {
		size = len(freq)
	}
	pool := make([]int, 0, size)
	if fromBottom {
		for _, entry := range freq[len(freq)-size:] {
			pool = append(pool, entry.Number)
		}
	} else {
		for _, entry := range freq[:size] {
			pool = append(pool, entry.Number)
		}
	}
	return pool
}

// sample picks up to k numbers uniformly at random, without replacement.
func (g *SuggestionGenerator) sample(pool []int, k int) []int {
	if k < 0 {
		k = 0
	}
	if k > len(pool) {
		k = len(pool)
	}
	shuffled := append([]int(nil), pool...)
	g.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:k]
}

// fillToBetSize tops a pick up to exactly BetSize with random numbers from
// the full game range, excluding the ones already chosen. A pool smaller
// than the bet size must still yield a playable ticket.
func (g *SuggestionGenerator) fillToBetSize(picked []int, profile domain.Profile) []int {
	if len(picked) >= profile.BetSize {
		return picked[:profile.BetSize]
	}

	chosen := make(map[int]bool, len(picked))
	for _, n := range picked {
		chosen[n] = true
	}

	var rest []int
	for n := 1; n <= profile.TotalNumbers; n++ {
		if !chosen[n] {
			rest = append(rest, n)
		}
	}
	return append(picked, g.sample(rest, profile.BetSize-len(picked))...)
}

func dedupe(numbers []int) []int {
	seen := make(map[int]bool, len(numbers))
	out := numbers[:0]
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
