// Package indicator derives resistance category flags from free-text labels.
//
// Matching is an unanchored, case-insensitive substring test. It is not word
// aware: "VRES" contains "VRE" and therefore sets the VRE flag. Labels that
// mention a category in passing are flagged the same way.
package indicator

import (
	"strings"

	"golang.org/x/text/cases"
)

// Flags holds the five resistance category indicators.
type Flags struct {
	BRMO  bool
	ESBL  bool
	VRE   bool
	MRSA  bool
	CARBA bool
}

// Category names as they appear in resistance labels.
const (
	CategoryBRMO  = "BRMO"
	CategoryESBL  = "ESBL"
	CategoryVRE   = "VRE"
	CategoryMRSA  = "MRSA"
	CategoryCARBA = "CARBA"
)

var (
	esbl  = fold(CategoryESBL)
	vre   = fold(CategoryVRE)
	mrsa  = fold(CategoryMRSA)
	carba = fold(CategoryCARBA)
	brmo  = fold(CategoryBRMO)
)

// fold uses a fresh Caser per call; a Caser must not be shared between goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Derive computes the indicator flags for a resistance label.
// An empty label yields all flags false.
func Derive(label string) Flags {
	if label == "" {
		return Flags{}
	}
	s := fold(label)

	f := Flags{
		ESBL:  strings.Contains(s, esbl),
		VRE:   strings.Contains(s, vre),
		MRSA:  strings.Contains(s, mrsa),
		CARBA: strings.Contains(s, carba),
	}
	f.BRMO = strings.Contains(s, brmo) || f.ESBL || f.VRE || f.MRSA || f.CARBA
	return f
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.BRMO || f.ESBL || f.VRE || f.MRSA || f.CARBA
}
