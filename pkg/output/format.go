// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"strings"

	"github.com/robrmz/MDE-Day-Planner/internal/planner"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []planner.Series) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		fmt.Printf("Day | Sample Size | MDE %%\n")
		fmt.Printf("___ | ___________ | _____\n")
		for _, point := range result.Points {
			_, _ = p.Printf("%3d | %11d | %.2f%%\n", point.Day, point.SampleSize, point.MDEPercent)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []planner.Series) {
	fmt.Print(CsvString(results))
}

// CsvString renders the forecast in comma-separated value format. All series
// share the same day column, so the day count comes from the longest one.
func CsvString(results []planner.Series) string {
	var b strings.Builder

	maxDays := 0
	for _, result := range results {
		if len(result.Points) > maxDays {
			maxDays = len(result.Points)
		}
	}

	b.WriteString(`"day"`)
	for _, result := range results {
		fmt.Fprintf(&b, `,"sample size (%s)","mde %% (%s)"`, result.Name, result.Name)
	}
	b.WriteString("\n")

	for i := 0; i < maxDays; i++ {
		fmt.Fprintf(&b, `"%d"`, i+1)
		for _, result := range results {
			if i < len(result.Points) {
				point := result.Points[i]
				fmt.Fprintf(&b, `,"%d","%.4f"`, point.SampleSize, point.MDEPercent)
			} else {
				b.WriteString(`,"",""`)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
