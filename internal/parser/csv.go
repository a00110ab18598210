package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// CSVParser handles CSV files. The first record is the table header.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Root, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	b := newTreeBuilder(filename)
	if len(records) > 0 {
		b.add(tableOf(records, true))
	}
	return b.finish(), nil
}
