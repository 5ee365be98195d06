package models

// LongRecord is one (organism, resistance, department) observation.
// Records are produced once by the reshape step and never modified afterwards.
type LongRecord struct {
	// Organisme is the organism name. Empty means absent.
	Organisme string `json:"organisme"`
	// Resistentie is the free-text resistance label. Empty means absent.
	Resistentie string `json:"resistentie"`
	// Afdeling is the department, taken from the column header.
	Afdeling string `json:"afdeling"`
	// Waarde is the observed value.
	Waarde Value `json:"waarde"`

	// Indicator flags derived from Resistentie.
	BRMO  bool `json:"brmo"`
	ESBL  bool `json:"esbl"`
	VRE   bool `json:"vre"`
	MRSA  bool `json:"mrsa"`
	CARBA bool `json:"carba"`

	ReportingPeriod

	// Workbook is the source file name (no path).
	Workbook string `json:"-"`
	// Sheet is the source worksheet name.
	Sheet string `json:"-"`
	// Row is the 1-based worksheet row the record came from.
	Row int `json:"-"`
}
