package model

import "time"

// LogRecord represents a single usage event stored as one line of the log.
type LogRecord struct {
	Timestamp time.Time
	Item      string
}

// SummaryEntry is the aggregated view of every record sharing one item name.
type SummaryEntry struct {
	Name     string
	LastUsed time.Time
	UseCount int
}
