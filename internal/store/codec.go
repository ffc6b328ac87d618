package store

import (
	"errors"
	"strings"
	"time"

	"github.com/Nao-Mk2/usedlog/internal/model"
)

// Delimiter separates the timestamp from the item name on each line.
// Names are not escaped, so a name containing it corrupts its line.
const Delimiter = ","

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	errNoDelimiter    = errors.New("no delimiter")
	errEmptyTimestamp = errors.New("empty timestamp")
	errEmptyName      = errors.New("empty name")
)

// FormatRecord encodes r as one log line, including the trailing newline.
func FormatRecord(r model.LogRecord) string {
	return r.Timestamp.UTC().Format(TimestampLayout) + Delimiter + r.Item + "\n"
}

// ParseRecord decodes a single log line. Only the first two fields are
// read; anything after a second delimiter is dropped.
func ParseRecord(line string) (model.LogRecord, error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, Delimiter)
	if len(fields) < 2 {
		return model.LogRecord{}, errNoDelimiter
	}
	rawTime, name := fields[0], fields[1]
	if rawTime == "" {
		return model.LogRecord{}, errEmptyTimestamp
	}
	if name == "" {
		return model.LogRecord{}, errEmptyName
	}
	ts, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return model.LogRecord{}, err
	}
	return model.LogRecord{Timestamp: ts, Item: name}, nil
}
