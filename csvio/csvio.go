// Package csvio handles the client side of spreadsheet interchange:
// CSV export, downloadable import templates and import-file checks.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// importExts is the import allowlist, checked by filename suffix before
// upload (no content sniffing).
var importExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// ErrUnsupportedFile is returned for files outside the import allowlist.
var ErrUnsupportedFile = errors.New("solo se permiten archivos .csv, .xlsx o .xls")

// CheckImportFile validates an import candidate by its filename extension.
func CheckImportFile(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !importExts[ext] {
		return ErrUnsupportedFile
	}
	return nil
}

// Filename builds the download name for an entity export: {entity}_{ISO-date}.csv.
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", entity, now.Format("2006-01-02"))
}

// Export serializes rows under a header row.
func Export(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing CSV row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}

// Template renders a one-example import template as a literal
// header+example-row CSV string.
func Template(headers, example []string) string {
	return strings.Join(headers, ",") + "\n" + strings.Join(example, ",") + "\n"
}

// Read parses CSV content into records; used to re-read templates and
// exported files.
func Read(r io.Reader) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}
	return records, nil
}
