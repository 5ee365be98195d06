package output

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// Driver names accepted by OpenSQL.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// SQLWriter stores a result in the tables resultaat and exclusie.
type SQLWriter struct {
	DB *sqlx.DB
}

// sqlRow is the database shape of a record.
type sqlRow struct {
	Organisme   sql.NullString  `db:"organisme"`
	Resistentie sql.NullString  `db:"resistentie"`
	Afdeling    string          `db:"afdeling"`
	Waarde      sql.NullFloat64 `db:"waarde"`
	WaardeTekst sql.NullString  `db:"waarde_tekst"`
	BRMO        int             `db:"brmo"`
	ESBL        int             `db:"esbl"`
	VRE         int             `db:"vre"`
	MRSA        int             `db:"mrsa"`
	CARBA       int             `db:"carba"`
	Jaar        int             `db:"jaar"`
	Maand       int             `db:"maand"`
	Werkboek    string          `db:"werkboek"`
	Blad        string          `db:"blad"`
	Rij         int             `db:"rij"`
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS %s (
		organisme    TEXT,
		resistentie  TEXT,
		afdeling     TEXT NOT NULL,
		waarde       DOUBLE PRECISION,
		waarde_tekst TEXT,
		brmo         INTEGER NOT NULL,
		esbl         INTEGER NOT NULL,
		vre          INTEGER NOT NULL,
		mrsa         INTEGER NOT NULL,
		carba        INTEGER NOT NULL,
		jaar         INTEGER NOT NULL,
		maand        INTEGER NOT NULL,
		werkboek     TEXT NOT NULL,
		blad         TEXT NOT NULL,
		rij          INTEGER NOT NULL
	)`

const insertSQL = `
	INSERT INTO %s (
		organisme, resistentie, afdeling, waarde, waarde_tekst,
		brmo, esbl, vre, mrsa, carba, jaar, maand,
		werkboek, blad, rij
	) VALUES (
		:organisme, :resistentie, :afdeling, :waarde, :waarde_tekst,
		:brmo, :esbl, :vre, :mrsa, :carba, :jaar, :maand,
		:werkboek, :blad, :rij
	)`

// OpenSQL connects to a sqlite3 or postgres database.
func OpenSQL(driver, dsn string) (*SQLWriter, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}
	return &SQLWriter{DB: db}, nil
}

// Close closes the database.
func (w *SQLWriter) Close() error {
	return w.DB.Close()
}

// Write replaces the contents of both tables with res in a single
// transaction. Tables are created when missing.
func (w *SQLWriter) Write(ctx context.Context, res *models.Result) error {
	tx, err := w.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range partitions(res) {
		if err := replaceTable(ctx, tx, p.Name, p.Table); err != nil {
			return fmt.Errorf("writing table %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func replaceTable(ctx context.Context, tx *sqlx.Tx, name string, t models.Table) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(createTableSQL, name)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+name); err != nil {
		return err
	}

	stmt, err := tx.PrepareNamedContext(ctx, fmt.Sprintf(insertSQL, name))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range t {
		if _, err := stmt.ExecContext(ctx, toSQLRow(rec)); err != nil {
			return err
		}
	}
	return nil
}

func toSQLRow(rec models.LongRecord) sqlRow {
	row := sqlRow{
		Organisme:   nullString(rec.Organisme),
		Resistentie: nullString(rec.Resistentie),
		Afdeling:    rec.Afdeling,
		BRMO:        flagInt(rec.BRMO),
		ESBL:        flagInt(rec.ESBL),
		VRE:         flagInt(rec.VRE),
		MRSA:        flagInt(rec.MRSA),
		CARBA:       flagInt(rec.CARBA),
		Jaar:        rec.Year,
		Maand:       rec.Month,
		Werkboek:    rec.Workbook,
		Blad:        rec.Sheet,
		Rij:         rec.Row,
	}
	if rec.Waarde.Valid {
		row.Waarde = sql.NullFloat64{Float64: rec.Waarde.Number, Valid: true}
	} else {
		row.WaardeTekst = nullString(rec.Waarde.Raw)
	}
	return row
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
