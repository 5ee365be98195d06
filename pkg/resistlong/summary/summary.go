// Package summary aggregates numeric observations per period and department.
package summary

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Key identifies a group.
type Key struct {
	Year     int
	Month    int
	Afdeling string
}

// Group holds the statistics of the numeric values of one group.
type Group struct {
	Key
	Count  int
	Sum    float64
	Mean   float64
	Median float64
	Max    float64
	// BRMO is the sum of the values on BRMO-flagged records.
	BRMO float64
}

// Build groups the numeric values of t by (year, month, department).
// Records without a numeric value are ignored. Groups are sorted by key.
func Build(t models.Table) ([]Group, error) {
	values := make(map[Key][]float64)
	brmo := make(map[Key]float64)
	for _, rec := range t {
		if !rec.Waarde.Valid {
			continue
		}
		k := Key{Year: rec.Year, Month: rec.Month, Afdeling: rec.Afdeling}
		values[k] = append(values[k], rec.Waarde.Number)
		if rec.BRMO {
			brmo[k] += rec.Waarde.Number
		}
	}

	groups := make([]Group, 0, len(values))
	for k, data := range values {
		g, err := describe(k, data)
		if err != nil {
			return nil, err
		}
		g.BRMO = brmo[k]
		groups = append(groups, g)
	}

	slices.SortFunc(groups, func(a, b Group) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			cmp.Compare(a.Afdeling, b.Afdeling),
		)
	})
	return groups, nil
}

func describe(k Key, data []float64) (Group, error) {
	g := Group{Key: k, Count: len(data)}
	var err error
	if g.Sum, err = stats.Sum(data); err != nil {
		return g, err
	}
	if g.Mean, err = stats.Mean(data); err != nil {
		return g, err
	}
	if g.Median, err = stats.Median(data); err != nil {
		return g, err
	}
	if g.Max, err = stats.Max(data); err != nil {
		return g, err
	}
	return g, nil
}
