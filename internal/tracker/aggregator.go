package tracker

import (
	"log/slog"
	"sort"

	"github.com/Nao-Mk2/usedlog/internal/model"
	"github.com/Nao-Mk2/usedlog/internal/store"
)

// Aggregator folds the log into one summary entry per item name.
type Aggregator struct {
	store LogStore
}

// NewAggregator creates an Aggregator reading from store.
func NewAggregator(store LogStore) *Aggregator {
	return &Aggregator{store: store}
}

// Summarize reads the whole log and returns entries sorted by LastUsed,
// most recent first. Entries with equal LastUsed keep the order in which
// their names first appeared. Malformed lines are skipped.
func (a *Aggregator) Summarize() ([]model.SummaryEntry, error) {
	index := make(map[string]int)
	var entries []model.SummaryEntry

	lineNo := 0
	for line, err := range a.store.Lines() {
		if err != nil {
			return nil, err
		}
		lineNo++
		rec, perr := store.ParseRecord(line)
		if perr != nil {
			slog.Debug("skipping malformed line", "line", lineNo, "reason", perr)
			continue
		}
		i, ok := index[rec.Item]
		if !ok {
			index[rec.Item] = len(entries)
			entries = append(entries, model.SummaryEntry{Name: rec.Item, LastUsed: rec.Timestamp, UseCount: 1})
			continue
		}
		e := &entries[i]
		e.UseCount++
		if rec.Timestamp.After(e.LastUsed) {
			e.LastUsed = rec.Timestamp
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})
	slog.Debug("log aggregated", "lines", lineNo, "entries", len(entries))
	return entries, nil
}
