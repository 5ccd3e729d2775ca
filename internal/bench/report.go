package bench

import (
	"fmt"
	"strings"
)

// printReport renders the fixed-width comparison table.
func printReport(reference, reads string, iterations int, results []result) {
	fmt.Println("\nRosalind format benchmark")
	fmt.Println("==========================")
	fmt.Printf("Reference: %s\n", reference)
	fmt.Printf("Reads:     %s\n", reads)
	fmt.Printf("Iterations per format: %d\n\n", iterations)

	fmt.Printf("%-8s%10s%10s%10s%16s\n", "Format", "Avg (s)", "Min (s)", "Max (s)", "Output size")
	for _, row := range results {
		fmt.Printf(
			"%-8s%10.3f%10.3f%10.3f%16s\n",
			strings.ToUpper(row.format),
			row.avg.Seconds(),
			row.min.Seconds(),
			row.max.Seconds(),
			humanSize(row.size),
		)
	}

	fmt.Println("\nTip: run with --env PYO3_PYTHON=/path/to/python if the build toolchain needs an explicit interpreter.")
}

// humanSize renders a byte count with a binary unit, capped at GB.
func humanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 || unit == "GB" {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f GB", size)
}
