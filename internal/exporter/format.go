package exporter

import (
	"fmt"
	"strings"
)

// formatFloat formats a float value for CSV output with 2 decimal places,
// so 1.5 appears as 1.50 consistently.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatNumbers renders a draw's numbers as a space-separated list.
func formatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = formatInt(n)
	}
	return strings.Join(parts, " ")
}
