package output

import (
	"strings"
	"testing"

	"github.com/robrmz/MDE-Day-Planner/internal/planner"
)

func sampleSeries() []planner.Series {
	return []planner.Series{
		{
			Name: "checkout banner",
			Points: []planner.Point{
				{Day: 1, SampleSize: 1000, MDEAbsolute: 0.0376, MDEPercent: 37.5872},
				{Day: 2, SampleSize: 2000, MDEAbsolute: 0.0266, MDEPercent: 26.5781},
			},
		},
	}
}

func TestCsvStringHeader(t *testing.T) {
	csv := CsvString(sampleSeries())

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvString() produced %d lines, expected 3", len(lines))
	}
	if lines[0] != `"day","sample size (checkout banner)","mde % (checkout banner)"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestCsvStringRows(t *testing.T) {
	csv := CsvString(sampleSeries())

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if lines[1] != `"1","1000","37.5872"` {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if lines[2] != `"2","2000","26.5781"` {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}

func TestCsvStringUnevenSeries(t *testing.T) {
	series := append(sampleSeries(), planner.Series{
		Name: "short run",
		Points: []planner.Point{
			{Day: 1, SampleSize: 500, MDEPercent: 53.1562},
		},
	})

	csv := CsvString(series)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvString() produced %d lines, expected 3", len(lines))
	}
	if !strings.HasSuffix(lines[2], `,"",""`) {
		t.Errorf("expected empty cells for exhausted series, got: %s", lines[2])
	}
}

func TestCsvStringEmpty(t *testing.T) {
	csv := CsvString(nil)
	if csv != "\"day\"\n" {
		t.Errorf("CsvString(nil) = %q, expected header only", csv)
	}
}
