// Package query models store-eligible constraints and in-memory predicates
// for the record search pipeline. A filter form is reduced by a pure builder
// function (one per collection) into two halves: equality/ordering
// constraints the store can evaluate, and predicates that have to run as a
// linear scan over the fetched set because the store cannot express them in
// a single query (ranges, substrings, combined fields).
package query

import (
	"strings"
	"time"
)

type Op string

const (
	// OpEq is a single-field equality comparison, eligible for pushdown.
	OpEq Op = "eq"
	// OpOrderDesc requests a descending sort on Field; at most one per query.
	OpOrderDesc Op = "order-desc"
)

// Constraint is one store-eligible clause.
type Constraint struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Constraint {
	return Constraint{Field: field, Op: OpEq, Value: value}
}

func OrderDesc(field string) Constraint {
	return Constraint{Field: field, Op: OpOrderDesc}
}

// Predicate is a client-side filter over one record.
type Predicate[T any] func(*T) bool

// Apply scans in order and keeps records matching every predicate.
func Apply[T any](records []T, preds []Predicate[T]) []T {
	if len(preds) == 0 {
		return records
	}
	out := make([]T, 0, len(records))
	for i := range records {
		ok := true
		for _, p := range preds {
			if !p(&records[i]) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, records[i])
		}
	}
	return out
}

// Date parses a form date (YYYY-MM-DD) into a UTC midnight instant. Empty
// input means "no bound" and returns nil.
func Date(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// InRange reports from <= t <= to, where a nil bound is open.
func InRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(endOfDay(*to)) {
		return false
	}
	return true
}

// endOfDay widens the upper bound so a date-only "to" filter includes the
// whole day it names.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// ContainsFold is a case-insensitive substring match.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
