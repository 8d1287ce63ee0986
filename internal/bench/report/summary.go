package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// WriteSummary prints the last-row snapshot of every variant, dataset by dataset.
func WriteSummary(r *Report, w io.Writer) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "RESUMEN ESTADÍSTICO - MÉTRICAS FINALES")
	fmt.Fprintln(w, rule)

	for _, dr := range r.Datasets {
		if !dr.Found {
			fmt.Fprintf(w, "\nDATASET NO ENCONTRADO: %s\n", dr.Name)
			continue
		}

		fmt.Fprintf(w, "\nDATASET: %s\n", strings.ToUpper(dr.Name))
		fmt.Fprintln(w, strings.Repeat("-", 50))

		for _, vr := range dr.Variants {
			fmt.Fprintf(w, "\n  Variante: %s\n", vr.Variant)
			if vr.Final == nil {
				fmt.Fprintln(w, "     • Sin filas")
				continue
			}
			f := vr.Final
			fmt.Fprintf(w, "     • Palabras procesadas: %s\n", numbers.Sprintf("%d", f.Words))
			fmt.Fprintf(w, "     • Porcentaje final caracteres escritos: %.2f%%\n", f.PercentTyped)
			fmt.Fprintf(w, "     • Nodos normalizados finales: %.2f\n", f.NormalizedNodes)
			fmt.Fprintf(w, "     • Tiempo por carácter final: %.2f μs\n", f.MicrosPerChar)
			fmt.Fprintf(w, "     • Tiempo total simulación: %.2f segundos\n", f.TotalSeconds)
		}
	}
}

// WriteStatsTable prints per-character latency statistics across all rows of each table.
func WriteStatsTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\nTiempo por carácter (μs) a lo largo de la ejecución\n\n")

	header := []string{"Dataset", "Variante", "Filas", "Min", "p50", "p95", "Max", "Media", "Desv.", "% final"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, dr := range r.Datasets {
		for _, vr := range dr.Variants {
			s := vr.MicrosPerChar
			row := []string{
				dr.Name,
				vr.Variant,
				fmt.Sprintf("%d", vr.Rows),
				fmtFloat(s.Min, s.IsZero()),
				fmtFloat(s.P50(), s.IsZero()),
				fmtFloat(s.P95(), s.IsZero()),
				fmtFloat(s.Max, s.IsZero()),
				fmtFloat(s.Mean, s.IsZero()),
				fmtFloat(s.Stddev, s.IsZero()),
				fmtPercent(vr.Final),
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	fmt.Fprintln(tw)
	tw.Flush()
}

func fmtFloat(v float64, empty bool) string {
	if empty {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtPercent(s *Snapshot) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", s.PercentTyped)
}
