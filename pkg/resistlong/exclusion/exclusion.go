// Package exclusion partitions long records into retained and excluded rows
// using denylist rules on the organism name.
//
// Denylist entries are regular expressions matched case-insensitively anywhere
// in the organism name. Most entries are plain words; note that "." matches
// any character, so "C.psittaci" also matches "C psittaci".
package exclusion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Reason names the rule that excluded a row.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonTerm     Reason = "term"
	ReasonTaxonomy Reason = "taxonomy"
	ReasonComma    Reason = "comma"
)

// Filter applies a compiled rule set.
type Filter struct {
	terms    *regexp.Regexp
	taxonomy *regexp.Regexp
	comma    bool
}

// New compiles the rules. An empty list matches nothing.
func New(r Rules) (*Filter, error) {
	terms, err := compile(r.ForbiddenTerms)
	if err != nil {
		return nil, fmt.Errorf("forbidden terms: %w", err)
	}
	taxonomy, err := compile(r.ForbiddenTaxonomy)
	if err != nil {
		return nil, fmt.Errorf("forbidden taxonomy: %w", err)
	}
	return &Filter{terms: terms, taxonomy: taxonomy, comma: r.ExcludeComma}, nil
}

func compile(patterns []string) (*regexp.Regexp, error) {
	var parts []string
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, err := regexp.Compile(p); err != nil {
			return nil, err
		}
		parts = append(parts, "(?:"+p+")")
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return regexp.Compile("(?i)" + strings.Join(parts, "|"))
}

// Match reports whether an organism name is excluded and by which rule.
// An absent (empty) organism is never excluded.
func (f *Filter) Match(organisme string) (bool, Reason) {
	if organisme == "" {
		return false, ReasonNone
	}
	switch {
	case f.terms != nil && f.terms.MatchString(organisme):
		return true, ReasonTerm
	case f.taxonomy != nil && f.taxonomy.MatchString(organisme):
		return true, ReasonTaxonomy
	case f.comma && strings.Contains(organisme, ","):
		return true, ReasonComma
	}
	return false, ReasonNone
}

// Partition splits a table in input order. Every row lands in exactly one
// of the two partitions.
func (f *Filter) Partition(t models.Table) models.Result {
	res := models.Result{
		Retained: make(models.Table, 0, len(t)),
		Excluded: make(models.Table, 0),
	}
	for _, rec := range t {
		if excluded, _ := f.Match(rec.Organisme); excluded {
			res.Excluded = append(res.Excluded, rec)
		} else {
			res.Retained = append(res.Retained, rec)
		}
	}
	return res
}

// Summarize counts excluded rows per reason.
func (f *Filter) Summarize(t models.Table) map[Reason]int {
	counts := make(map[Reason]int)
	for _, rec := range t {
		if excluded, reason := f.Match(rec.Organisme); excluded {
			counts[reason]++
		}
	}
	return counts
}
