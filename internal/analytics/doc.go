// Package analytics computes descriptive statistics over a consolidated
// lottery draw history and derives ticket suggestions from them.
//
// Aggregate is a pure function from (history, profile) to the statistics
// bundle: per-number frequency, pair co-occurrence, parity distribution,
// recurrence intervals with current delay, and repeated-draw detection.
// SuggestionGenerator turns the frequency table into hot, cold and mixed
// picks using an injectable randomness source.
//
// Nothing here touches files or the network; re-running an analysis on a
// filtered history needs no re-parsing.
package analytics
