package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Format names an output sink.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatJSON     Format = "json"
	FormatSQLite   Format = "sqlite"
	FormatPostgres Format = "postgres"
)

// DefaultXLSXPath is used when the XLSX sink gets no destination.
const DefaultXLSXPath = "resistlong.xlsx"

// Write sends res to the sink named by format.
//
// dest is interpreted per format: a directory for csv (resultaat.csv and
// exclusie.csv are written into it), a file path for xlsx, json and sqlite,
// and a connection string for postgres. JSON without dest goes to stdout.
func Write(ctx context.Context, res *models.Result, format Format, dest string, pretty bool, stdout io.Writer) error {
	switch format {
	case FormatCSV:
		return writeCSVDir(res, dest)
	case FormatXLSX:
		if dest == "" {
			dest = DefaultXLSXPath
		}
		return WriteXLSX(dest, res)
	case FormatJSON:
		data, err := ToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if dest == "" {
			_, err = fmt.Fprintln(stdout, string(data))
			return err
		}
		return os.WriteFile(dest, data, 0644)
	case FormatSQLite, FormatPostgres:
		if dest == "" {
			return fmt.Errorf("output format %s needs a destination", format)
		}
		driver := DriverPostgres
		if format == FormatSQLite {
			driver = DriverSQLite
		}
		w, err := OpenSQL(driver, dest)
		if err != nil {
			return err
		}
		defer w.Close()
		return w.Write(ctx, res)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeCSVDir(res *models.Result, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, p := range partitions(res) {
		if err := writeCSVFile(filepath.Join(dir, p.Name+".csv"), p.Table); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(path string, t models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
