package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes r to path as indented JSON. The parent directory must exist.
func WriteJSON(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	return f.Close()
}
