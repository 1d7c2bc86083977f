package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Importaciones-api/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(r io.Reader) (*table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	// Planillas exportadas desde Excel en Windows llegan en Windows-1252.
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.Comma = detectDelimiter(raw)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv inválido: %v", domain.ErrUnsupportedFile, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return &table{header: records[0], rows: records[1:]}, nil
}

// detectDelimiter ';' si aparece más que ',' en la primera línea.
func detectDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
