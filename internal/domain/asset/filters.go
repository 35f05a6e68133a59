package asset

import (
	"fmt"
	"strconv"

	"secad-service/internal/query"
)

// BuildQuery reduces the asset search form into store constraints and
// in-memory predicates. The store evaluates equality on the tag, sector and
// classification fields (ordered by creation, newest first); the description
// substring, acquisition-date range and value range run client-side.
func BuildQuery(f SearchFilters) ([]query.Constraint, []query.Predicate[Asset], error) {
	cons := []query.Constraint{query.OrderDesc("created_at")}
	var preds []query.Predicate[Asset]

	if f.GeneralTag != "" {
		cons = append(cons, query.Eq("general_tag", f.GeneralTag))
	}
	if f.LocalTag != "" {
		cons = append(cons, query.Eq("local_tag", f.LocalTag))
	}
	if f.Sector != "" {
		cons = append(cons, query.Eq("sector", f.Sector))
	}
	if f.AssetClass != "" {
		cons = append(cons, query.Eq("asset_class", f.AssetClass))
	}
	if f.ConservationState != "" {
		cons = append(cons, query.Eq("conservation_state", f.ConservationState))
	}

	if f.Description != "" {
		needle := f.Description
		preds = append(preds, func(a *Asset) bool {
			return query.ContainsFold(a.Description, needle)
		})
	}

	from, err := query.Date(f.AcquisitionFrom)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid acquisition start date: %w", err)
	}
	to, err := query.Date(f.AcquisitionTo)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid acquisition end date: %w", err)
	}
	if from != nil || to != nil {
		preds = append(preds, func(a *Asset) bool {
			return query.InRange(a.AcquisitionDate, from, to)
		})
	}

	if f.MinValue != "" {
		min, err := strconv.ParseFloat(f.MinValue, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid minimum value %q: %w", f.MinValue, err)
		}
		preds = append(preds, func(a *Asset) bool { return a.NetValue >= min })
	}
	if f.MaxValue != "" {
		max, err := strconv.ParseFloat(f.MaxValue, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid maximum value %q: %w", f.MaxValue, err)
		}
		preds = append(preds, func(a *Asset) bool { return a.NetValue <= max })
	}

	return cons, preds, nil
}

// PredicateFor re-expresses a pushdown constraint as a client-side predicate
// for the equivalence check between server- and client-evaluated filters.
func PredicateFor(c query.Constraint) query.Predicate[Asset] {
	if c.Op != query.OpEq {
		return func(*Asset) bool { return true }
	}
	s, _ := c.Value.(string)
	switch c.Field {
	case "general_tag":
		return func(a *Asset) bool { return a.GeneralTag == s }
	case "local_tag":
		return func(a *Asset) bool { return a.LocalTag == s }
	case "sector":
		return func(a *Asset) bool { return a.Sector == s }
	case "asset_class":
		return func(a *Asset) bool { return a.AssetClass == s }
	case "conservation_state":
		return func(a *Asset) bool { return a.ConservationState == s }
	default:
		return func(*Asset) bool { return true }
	}
}
