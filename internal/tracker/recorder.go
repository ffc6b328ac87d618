package tracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Nao-Mk2/usedlog/internal/model"
)

// Recorder appends usage events to the log.
type Recorder struct {
	store LogStore
	out   io.Writer
}

// NewRecorder creates a Recorder that reports each recorded item to out.
func NewRecorder(store LogStore, out io.Writer) *Recorder {
	return &Recorder{store: store, out: out}
}

// Record appends one record per item, in order, all stamped with at.
func (r *Recorder) Record(items []string, at time.Time) error {
	if len(items) == 0 {
		return errors.New("no items to record")
	}
	records := make([]model.LogRecord, 0, len(items))
	for _, item := range items {
		records = append(records, model.LogRecord{Timestamp: at, Item: item})
	}
	if err := r.store.Append(records); err != nil {
		return err
	}
	slog.Debug("records appended", "count", len(records), "at", at.UTC().Format(time.RFC3339Nano))

	fmt.Fprintln(r.out)
	for _, item := range items {
		fmt.Fprintf(r.out, "> Recorded usage of '%s' to db\n", item)
	}
	fmt.Fprintln(r.out)
	return nil
}
