package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/metrics"
)

type Report struct {
	Meta     Meta            `json:"meta"`
	Datasets []DatasetReport `json:"datasets"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Seed        uint64          `json:"seed"`
	InputDir    string          `json:"input_dir,omitempty"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// DatasetReport is one expected dataset. Found is false when no table was loaded for it.
type DatasetReport struct {
	Name     string          `json:"name"`
	Found    bool            `json:"found"`
	Variants []VariantReport `json:"variants,omitempty"`
}

type VariantReport struct {
	Variant string `json:"variant"`
	Rows    int    `json:"rows"`
	// Final is nil for a table without rows.
	Final         *Snapshot     `json:"final,omitempty"`
	MicrosPerChar metrics.Stats `json:"micros_per_char"`
	PercentTyped  metrics.Stats `json:"percent_typed"`
}

// Snapshot is the last row of a table.
type Snapshot struct {
	Words           int64   `json:"words"`
	PercentTyped    float64 `json:"percent_typed"`
	NormalizedNodes float64 `json:"normalized_nodes"`
	MicrosPerChar   float64 `json:"micros_per_char"`
	TotalSeconds    float64 `json:"total_seconds"`
}
