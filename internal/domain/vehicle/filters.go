package vehicle

import (
	"fmt"
	"strconv"
	"strings"

	"secad-service/internal/query"
)

// BuildQuery reduces the search form into store constraints plus in-memory
// predicates. Equality-shaped criteria are pushed down; date ranges and the
// release tri-state are applied client-side over the fetched set. An empty
// field means "no constraint".
func BuildQuery(f SearchFilters) ([]query.Constraint, []query.Predicate[Vehicle], error) {
	var cons []query.Constraint
	var preds []query.Predicate[Vehicle]

	if f.RegistrationNumber != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(f.RegistrationNumber), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid registration number %q: %w", f.RegistrationNumber, err)
		}
		cons = append(cons, query.Eq("registration_number", n))
	}
	if f.Plate != "" {
		cons = append(cons, query.Eq("plate", strings.ToUpper(f.Plate)))
	}
	if f.City != "" {
		cons = append(cons, query.Eq("city", f.City))
	}
	if f.VehicleType != "" {
		cons = append(cons, query.Eq("vehicle_type", f.VehicleType))
	}
	if f.State != "" {
		cons = append(cons, query.Eq("state", f.State))
	}
	if f.Brand != "" {
		cons = append(cons, query.Eq("brand", f.Brand))
	}
	if f.Model != "" {
		cons = append(cons, query.Eq("model", f.Model))
	}
	if f.HasKey != "" {
		cons = append(cons, query.Eq("has_key", f.HasKey == "true"))
	}
	if f.BouTrv != "" {
		cons = append(cons, query.Eq("bou_trv", f.BouTrv))
	}
	if f.HasNoPlate {
		cons = append(cons, query.Eq("plate", NoPlateSentinel))
	}

	// Release status is a tri-state keyed on presence of the date, not an
	// equality the constraint type can carry.
	switch f.Released {
	case "true":
		preds = append(preds, func(v *Vehicle) bool { return v.Released() })
	case "false":
		preds = append(preds, func(v *Vehicle) bool { return !v.Released() })
	}

	inspFrom, err := query.Date(f.InspectionFrom)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid inspection start date: %w", err)
	}
	inspTo, err := query.Date(f.InspectionTo)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid inspection end date: %w", err)
	}
	if inspFrom != nil || inspTo != nil {
		preds = append(preds, func(v *Vehicle) bool {
			return query.InRange(v.InspectionDate, inspFrom, inspTo)
		})
	}

	relFrom, err := query.Date(f.ReleaseFrom)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid release start date: %w", err)
	}
	relTo, err := query.Date(f.ReleaseTo)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid release end date: %w", err)
	}
	if relFrom != nil || relTo != nil {
		// A vehicle without a release date never matches a release range.
		preds = append(preds, func(v *Vehicle) bool {
			return v.ReleaseDate != nil && query.InRange(*v.ReleaseDate, relFrom, relTo)
		})
	}

	return cons, preds, nil
}

// PredicateFor re-expresses a pushdown constraint as a client-side predicate
// over the same field. Filtering server-side and re-applying the predicate
// over the unfiltered set must agree.
func PredicateFor(c query.Constraint) query.Predicate[Vehicle] {
	if c.Op != query.OpEq {
		return func(*Vehicle) bool { return true }
	}
	switch c.Field {
	case "registration_number":
		n, _ := c.Value.(int64)
		return func(v *Vehicle) bool { return v.RegistrationNumber == n }
	case "plate":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.Plate == s }
	case "city":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.City == s }
	case "vehicle_type":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.VehicleType == s }
	case "state":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.State == s }
	case "brand":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.Brand == s }
	case "model":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.Model == s }
	case "has_key":
		b, _ := c.Value.(bool)
		return func(v *Vehicle) bool { return v.HasKey == b }
	case "bou_trv":
		s, _ := c.Value.(string)
		return func(v *Vehicle) bool { return v.BouTrv == s }
	default:
		return func(*Vehicle) bool { return true }
	}
}
