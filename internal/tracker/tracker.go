package tracker

import (
	"iter"

	"github.com/Nao-Mk2/usedlog/internal/model"
)

// LogStore is the subset of the log store the tracker needs.
type LogStore interface {
	Append(records []model.LogRecord) error
	Lines() iter.Seq2[string, error]
}
