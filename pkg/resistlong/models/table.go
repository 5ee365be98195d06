package models

// Table is an ordered sequence of long records.
type Table []LongRecord

// Result holds the two partitions produced by the exclusion filter.
type Result struct {
	// Retained contains the rows that passed every exclusion rule.
	Retained Table `json:"resultaat"`
	// Excluded contains the rows that matched at least one exclusion rule.
	Excluded Table `json:"exclusie"`
}

// Len returns the total number of rows across both partitions.
func (r *Result) Len() int {
	return len(r.Retained) + len(r.Excluded)
}
