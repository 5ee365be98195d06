package exclusion

// Rules is the static exclusion configuration.
type Rules struct {
	// ForbiddenTerms are patterns for qualitative or out-of-scope test descriptions.
	ForbiddenTerms []string
	// ForbiddenTaxonomy are patterns for named organisms and tests to exclude.
	ForbiddenTaxonomy []string
	// ExcludeComma excludes organisms containing a comma (compound entries).
	ExcludeComma bool
}

// DefaultRules returns the denylists for the microbiology report template.
func DefaultRules() Rules {
	return Rules{
		ForbiddenTerms: []string{
			"coccen",
			"staven",
			"Coagulase-negatieve",
			"Fluoresc. preparaat",
			"vergroenend",
			"gekweekt",
			"BRMO PCR",
			"ESBL/CPE PCR",
			"IgG",
			"IgM",
		},
		ForbiddenTaxonomy: []string{
			"Plasmodium",
			"C.psittaci",
			"Q-koorts",
			"Rotavirus antigeen sneltest",
			"Adenovirus antigeen sneltest",
			"MRSA PCR sneltest",
			"MRSA PCR",
			"MRSA DNA",
			"VRE PCR sneltest",
		},
		ExcludeComma: true,
	}
}
