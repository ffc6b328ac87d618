package util

import (
	"fmt"
	"reflect"
	"time"

	"github.com/Nao-Mk2/usedlog/internal/model"
	"github.com/jmespath/go-jmespath"
)

// FilterEntries evaluates the JMESPath expression against each entry, exposed as
// {"name": ..., "lastUsed": RFC3339, "useCount": n}, and keeps the entries whose
// result is truthy. An empty expression returns entries unchanged.
func FilterEntries(entries []model.SummaryEntry, expr string) ([]model.SummaryEntry, error) {
	if expr == "" {
		return entries, nil
	}
	jp, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	kept := make([]model.SummaryEntry, 0, len(entries))
	for _, e := range entries {
		res, err := jp.Search(entryDocument(e))
		if err != nil {
			return nil, fmt.Errorf("filter %q on %q failed: %w", expr, e.Name, err)
		}
		if isTruthy(res) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func entryDocument(e model.SummaryEntry) map[string]any {
	return map[string]any{
		"name":     e.Name,
		"lastUsed": e.LastUsed.UTC().Format(time.RFC3339Nano),
		// JMESPath numbers are float64
		"useCount": float64(e.UseCount),
	}
}

// isTruthy follows JMESPath truthiness: null, false and empty values are false.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}
