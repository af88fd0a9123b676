package csvdata

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// DefaultDelimiter is what the vendor's export tool uses.
const DefaultDelimiter = ';'

// Reader streams header-keyed rows out of a windows-1251 encoded CSV
// export. Each run opens the file fresh; nothing is cached between runs.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
}

// Open opens path and reads the header row. The returned error wraps
// os.ErrNotExist when the file is missing, so callers can produce a
// proper diagnostic before a run starts.
func Open(path string, delimiter rune) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}

	cr := csv.NewReader(charmap.Windows1251.NewDecoder().Reader(f))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header %s: %w", path, err)
	}

	return &Reader{file: f, csv: cr, header: header}, nil
}

// Next returns the next row keyed by header column names, or io.EOF.
// Short records leave the trailing columns empty.
func (r *Reader) Next() (map[string]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	row := make(map[string]string, len(r.header))
	for i, name := range r.header {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

func (r *Reader) Close() error {
	return r.file.Close()
}
