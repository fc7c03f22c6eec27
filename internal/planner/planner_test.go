package planner

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/robrmz/MDE-Day-Planner/internal/config"
	"go.uber.org/zap"
)

func validScenario() config.Scenario {
	return config.Scenario{
		Name:            "baseline",
		Active:          true,
		Alpha:           0.05,
		Power:           0.8,
		BaselineRate:    0.1,
		DailySampleSize: 1000,
		MaxDays:         5,
	}
}

func TestMinimalDetectableEffectKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		power    float64
		p        float64
		n        float64
		expected float64
	}{
		{
			name:     "Day one at a thousand visitors",
			alpha:    0.05,
			power:    0.8,
			p:        0.1,
			n:        1000,
			expected: 0.0375872,
		},
		{
			name:     "Day five at a thousand visitors",
			alpha:    0.05,
			power:    0.8,
			p:        0.1,
			n:        5000,
			expected: 0.0168095,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, err := MinimalDetectableEffect(tt.alpha, tt.power, tt.p, tt.n)
			if err != nil {
				t.Fatalf("MinimalDetectableEffect() error = %v", err)
			}
			if math.Abs(delta-tt.expected) > 1e-6 {
				t.Errorf("MinimalDetectableEffect() = %.7f, expected %.7f", delta, tt.expected)
			}
		})
	}
}

func TestMinimalDetectableEffectDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		power float64
		p     float64
		n     float64
		field string
	}{
		{name: "Zero alpha", alpha: 0, power: 0.8, p: 0.1, n: 1000, field: "alpha"},
		{name: "Alpha of one", alpha: 1, power: 0.8, p: 0.1, n: 1000, field: "alpha"},
		{name: "Zero power", alpha: 0.05, power: 0, p: 0.1, n: 1000, field: "power"},
		{name: "Power of one", alpha: 0.05, power: 1, p: 0.1, n: 1000, field: "power"},
		{name: "Zero baseline", alpha: 0.05, power: 0.8, p: 0, n: 1000, field: "baselineRate"},
		{name: "Baseline of one", alpha: 0.05, power: 0.8, p: 1, n: 1000, field: "baselineRate"},
		{name: "Zero sample size", alpha: 0.05, power: 0.8, p: 0.1, n: 0, field: "sampleSize"},
		{name: "Negative sample size", alpha: 0.05, power: 0.8, p: 0.1, n: -5, field: "sampleSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MinimalDetectableEffect(tt.alpha, tt.power, tt.p, tt.n)
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("MinimalDetectableEffect() error = %v, expected DomainError", err)
			}
			if domainErr.Field != tt.field {
				t.Errorf("DomainError.Field = %s, expected %s", domainErr.Field, tt.field)
			}
		})
	}
}

func TestComputeSeriesPointCountAndOrder(t *testing.T) {
	scenario := validScenario()
	scenario.MaxDays = 21

	points, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}

	if len(points) != scenario.MaxDays {
		t.Fatalf("ComputeSeries() returned %d points, expected %d", len(points), scenario.MaxDays)
	}
	for i, point := range points {
		if point.Day != i+1 {
			t.Errorf("points[%d].Day = %d, expected %d", i, point.Day, i+1)
		}
		if point.SampleSize != scenario.DailySampleSize*(i+1) {
			t.Errorf("points[%d].SampleSize = %d, expected %d", i, point.SampleSize, scenario.DailySampleSize*(i+1))
		}
	}
}

func TestComputeSeriesMonotonicDecrease(t *testing.T) {
	scenario := validScenario()
	scenario.MaxDays = 365

	points, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}

	for i, point := range points {
		if point.MDEPercent <= 0 {
			t.Errorf("points[%d].MDEPercent = %v, expected > 0", i, point.MDEPercent)
		}
		if i > 0 && point.MDEPercent >= points[i-1].MDEPercent {
			t.Errorf("points[%d].MDEPercent = %v not strictly below day %d's %v",
				i, point.MDEPercent, i, points[i-1].MDEPercent)
		}
	}
}

func TestComputeSeriesKnownScenario(t *testing.T) {
	points, err := ComputeSeries(validScenario())
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("ComputeSeries() returned %d points, expected 5", len(points))
	}

	if math.Abs(points[0].MDEPercent-37.5872) > 0.001 {
		t.Errorf("day 1 MDEPercent = %.4f, expected 37.5872", points[0].MDEPercent)
	}
	if math.Abs(points[4].MDEPercent-16.8095) > 0.001 {
		t.Errorf("day 5 MDEPercent = %.4f, expected 16.8095", points[4].MDEPercent)
	}
	if points[4].MDEPercent >= points[0].MDEPercent {
		t.Errorf("day 5 MDEPercent %v not below day 1's %v", points[4].MDEPercent, points[0].MDEPercent)
	}
}

func TestComputeSeriesSampleSizeScaling(t *testing.T) {
	scenario := validScenario()
	base, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}

	scenario.DailySampleSize *= 2
	doubled, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}

	// MDE scales as 1/sqrt(n), so doubling traffic divides it by sqrt(2).
	for i := range base {
		ratio := doubled[i].MDEPercent / base[i].MDEPercent
		if math.Abs(ratio-1/math.Sqrt2) > 1e-9 {
			t.Errorf("day %d ratio = %v, expected %v", base[i].Day, ratio, 1/math.Sqrt2)
		}
	}
}

func TestComputeSeriesInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Scenario)
		field  string
	}{
		{name: "Zero baseline rate", mutate: func(s *config.Scenario) { s.BaselineRate = 0 }, field: "baselineRate"},
		{name: "Baseline rate of one", mutate: func(s *config.Scenario) { s.BaselineRate = 1 }, field: "baselineRate"},
		{name: "Zero alpha", mutate: func(s *config.Scenario) { s.Alpha = 0 }, field: "alpha"},
		{name: "Zero power", mutate: func(s *config.Scenario) { s.Power = 0 }, field: "power"},
		{name: "Zero daily sample size", mutate: func(s *config.Scenario) { s.DailySampleSize = 0 }, field: "dailySampleSize"},
		{name: "Negative max days", mutate: func(s *config.Scenario) { s.MaxDays = -1 }, field: "maxDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := validScenario()
			tt.mutate(&scenario)

			points, err := ComputeSeries(scenario)
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("ComputeSeries() error = %v, expected DomainError", err)
			}
			if domainErr.Field != tt.field {
				t.Errorf("DomainError.Field = %s, expected %s", domainErr.Field, tt.field)
			}
			if len(points) != 0 {
				t.Errorf("ComputeSeries() returned %d points on error, expected none", len(points))
			}
		})
	}
}

func TestComputeSeriesIdempotent(t *testing.T) {
	scenario := validScenario()

	first, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}
	second, err := ComputeSeries(scenario)
	if err != nil {
		t.Fatalf("ComputeSeries() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("ComputeSeries() results differ between identical runs")
	}
}

func TestGetPlanSkipsInactiveScenarios(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	active := validScenario()
	inactive := validScenario()
	inactive.Name = "shelved"
	inactive.Active = false

	conf := config.Configuration{Scenarios: []config.Scenario{active, inactive}}

	results, err := GetPlan(logger, conf)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("GetPlan() returned %d series, expected 1", len(results))
	}
	if results[0].Name != "baseline" {
		t.Errorf("GetPlan() series name = %s, expected baseline", results[0].Name)
	}
}

func TestGetPlanAbortsOnDomainError(t *testing.T) {
	bad := validScenario()
	bad.Name = "broken"
	bad.BaselineRate = 1.2

	conf := config.Configuration{Scenarios: []config.Scenario{validScenario(), bad}}

	results, err := GetPlan(nil, conf)
	if err == nil {
		t.Fatal("GetPlan() expected error, got nil")
	}
	if len(results) != 0 {
		t.Errorf("GetPlan() returned %d series on error, expected none", len(results))
	}
}
