package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader yields header-keyed records.
type Reader interface {
	Read() ([]map[string]string, error)
}

type CSVReader struct {
	reader  io.Reader
	headers []string
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

// Headers returns the header row seen by the last Read.
func (cr *CSVReader) Headers() []string {
	return cr.headers
}

func (cr *CSVReader) Read() ([]map[string]string, error) {
	csvReader := csv.NewReader(cr.reader)
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	cr.headers = headers

	var records []map[string]string
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			record[h] = strings.TrimSpace(row[i])
		}
		records = append(records, record)
	}

	return records, nil
}
