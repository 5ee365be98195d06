package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// WriteCSV writes the header and one line per record.
func WriteCSV(w io.Writer, t models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, rec := range t {
		if err := cw.Write(Row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
