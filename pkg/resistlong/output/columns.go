// Package output renders a run result as CSV, XLSX, JSON or SQL tables.
package output

import (
	"strconv"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Partition names, used as file, sheet and table names.
const (
	RetainedName = "resultaat"
	ExcludedName = "exclusie"
)

// Columns is the header of every tabular sink.
var Columns = []string{
	"Organisme", "Resistentie", "Afdeling", "Waarde",
	"BRMO", "ESBL", "VRE", "MRSA", "CARBA",
	"Jaar", "Maand",
}

// Row renders a record in Columns order. Flags render as 1 or 0.
func Row(rec models.LongRecord) []string {
	return []string{
		rec.Organisme,
		rec.Resistentie,
		rec.Afdeling,
		rec.Waarde.String(),
		flag(rec.BRMO),
		flag(rec.ESBL),
		flag(rec.VRE),
		flag(rec.MRSA),
		flag(rec.CARBA),
		strconv.Itoa(rec.Year),
		strconv.Itoa(rec.Month),
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func flagInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// partitions pairs each partition with its name, retained first.
func partitions(res *models.Result) []struct {
	Name  string
	Table models.Table
} {
	return []struct {
		Name  string
		Table models.Table
	}{
		{RetainedName, res.Retained},
		{ExcludedName, res.Excluded},
	}
}
