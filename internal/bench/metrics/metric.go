package metrics

import "sort"

// Metric names a charted column.
type Metric string

const (
	NormalizedNodes Metric = "nodos_normalizados"
	MicrosPerChar   Metric = "tiempo_por_caracter"
	PercentTyped    Metric = "porcentaje_caracteres"
)

// Metrics lists the charted columns in panel order.
var Metrics = []Metric{NormalizedNodes, MicrosPerChar, PercentTyped}

func (r Row) Value(m Metric) float64 {
	switch m {
	case NormalizedNodes:
		return r.NormalizedNodes
	case MicrosPerChar:
		return r.MicrosPerChar
	case PercentTyped:
		return r.PercentTyped
	default:
		return 0
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
