// Package stats reduces a filtered record set into grouped counts and sums.
// Grouping dimensions enumerate their canonical category list first —
// reporting zero for absent categories so chart and report output is
// deterministic — and then any non-enumerated literal values in order of
// first occurrence, so free-text values are bucketed rather than dropped.
package stats

import (
	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
)

// ReleaseSplit counts records in a bucket by release status.
type ReleaseSplit struct {
	Key         string `json:"key"`
	Total       int    `json:"total"`
	Released    int    `json:"released"`
	NotReleased int    `json:"not_released"`
}

// Count is a plain per-category tally.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ValueBucket tallies records and sums their monetary value.
type ValueBucket struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// KeySplit counts vehicles by key possession.
type KeySplit struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// VehicleStats is the aggregate over a filtered vehicle set.
type VehicleStats struct {
	Total       int            `json:"total"`
	Released    int            `json:"released"`
	NotReleased int            `json:"not_released"`
	ByCity      []ReleaseSplit `json:"by_city"`
	ByType      []ReleaseSplit `json:"by_type"`
	ByKey       KeySplit       `json:"by_key"`
	ByState     []Count        `json:"by_state"`
}

// AssetStats is the aggregate over a filtered asset set.
type AssetStats struct {
	Total          int           `json:"total"`
	TotalValue     float64       `json:"total_value"`
	BySector       []ValueBucket `json:"by_sector"`
	ByConservation []Count       `json:"by_conservation"`
	ByClass        []Count       `json:"by_class"`
}

// ForVehicles runs a single pass over the filtered set.
func ForVehicles(vehicles []vehicle.Vehicle) VehicleStats {
	s := VehicleStats{Total: len(vehicles)}

	byCity := newSplitter(vehicle.Cities)
	byType := newSplitter(vehicle.VehicleTypes)
	byState := newCounter(vehicle.States)

	for i := range vehicles {
		v := &vehicles[i]
		released := v.Released()
		if released {
			s.Released++
		} else {
			s.NotReleased++
		}
		if v.HasKey {
			s.ByKey.Yes++
		} else {
			s.ByKey.No++
		}
		byCity.add(v.City, released)
		byType.add(v.VehicleType, released)
		byState.add(v.State)
	}

	s.ByCity = byCity.entries()
	s.ByType = byType.entries()
	s.ByState = byState.entries()
	return s
}

// ForAssets runs a single pass over the filtered set.
func ForAssets(assets []asset.Asset) AssetStats {
	s := AssetStats{Total: len(assets)}

	bySector := newSummer(asset.Sectors)
	byConservation := newCounter(asset.ConservationStates)
	byClass := newCounter(asset.Classes)

	for i := range assets {
		a := &assets[i]
		s.TotalValue += a.NetValue
		bySector.add(a.Sector, a.NetValue)
		byConservation.add(a.ConservationState)
		byClass.add(a.AssetClass)
	}

	s.BySector = bySector.entries()
	s.ByConservation = byConservation.entries()
	s.ByClass = byClass.entries()
	return s
}

// keyset tracks bucket ordering: canonical categories up front, unknown
// literals appended at first occurrence.
type keyset struct {
	keys  []string
	index map[string]int
}

func newKeyset(canonical []string) *keyset {
	ks := &keyset{index: make(map[string]int, len(canonical))}
	for _, k := range canonical {
		ks.index[k] = len(ks.keys)
		ks.keys = append(ks.keys, k)
	}
	return ks
}

func (ks *keyset) at(key string) int {
	if i, ok := ks.index[key]; ok {
		return i
	}
	ks.index[key] = len(ks.keys)
	ks.keys = append(ks.keys, key)
	return len(ks.keys) - 1
}

type splitter struct {
	ks      *keyset
	buckets []ReleaseSplit
}

func newSplitter(canonical []string) *splitter {
	return &splitter{ks: newKeyset(canonical)}
}

func (g *splitter) add(key string, released bool) {
	i := g.ks.at(key)
	for len(g.buckets) <= i {
		g.buckets = append(g.buckets, ReleaseSplit{})
	}
	g.buckets[i].Total++
	if released {
		g.buckets[i].Released++
	} else {
		g.buckets[i].NotReleased++
	}
}

func (g *splitter) entries() []ReleaseSplit {
	out := make([]ReleaseSplit, len(g.ks.keys))
	for i, k := range g.ks.keys {
		if i < len(g.buckets) {
			out[i] = g.buckets[i]
		}
		out[i].Key = k
	}
	return out
}

type counter struct {
	ks      *keyset
	buckets []int
}

func newCounter(canonical []string) *counter {
	return &counter{ks: newKeyset(canonical)}
}

func (g *counter) add(key string) {
	i := g.ks.at(key)
	for len(g.buckets) <= i {
		g.buckets = append(g.buckets, 0)
	}
	g.buckets[i]++
}

func (g *counter) entries() []Count {
	out := make([]Count, len(g.ks.keys))
	for i, k := range g.ks.keys {
		out[i].Key = k
		if i < len(g.buckets) {
			out[i].Count = g.buckets[i]
		}
	}
	return out
}

type summer struct {
	ks      *keyset
	buckets []ValueBucket
}

func newSummer(canonical []string) *summer {
	return &summer{ks: newKeyset(canonical)}
}

func (g *summer) add(key string, value float64) {
	i := g.ks.at(key)
	for len(g.buckets) <= i {
		g.buckets = append(g.buckets, ValueBucket{})
	}
	g.buckets[i].Count++
	g.buckets[i].Value += value
}

func (g *summer) entries() []ValueBucket {
	out := make([]ValueBucket, len(g.ks.keys))
	for i, k := range g.ks.keys {
		if i < len(g.buckets) {
			out[i] = g.buckets[i]
		}
		out[i].Key = k
	}
	return out
}
