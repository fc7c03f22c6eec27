// Package planner defines the data structures related to a planning scenario
// and includes functions for computing the minimal detectable effect forecast.
package planner

import (
	"fmt"
	"math"

	"github.com/robrmz/MDE-Day-Planner/internal/config"
	"github.com/robrmz/MDE-Day-Planner/pkg/constants"
	"github.com/robrmz/MDE-Day-Planner/pkg/stats"
	"go.uber.org/zap"
)

// Point is one day of the forecast: the cumulative per-arm sample size after
// Day days and the smallest effect detectable with it.
type Point struct {
	Day         int
	SampleSize  int
	MDEAbsolute float64
	MDEPercent  float64
}

// Series holds the full forecast for one scenario.
type Series struct {
	Name   string
	Points []Point
}

// DomainError reports an input outside its valid mathematical domain.
type DomainError struct {
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MinimalDetectableEffect returns the smallest absolute difference in
// conversion rate that a two-sample proportion test with n subjects per arm
// detects at significance alpha with the given power, approximating both
// arms' variance at the baseline rate p.
func MinimalDetectableEffect(alpha, power, p, n float64) (float64, error) {
	if err := validateInputs(alpha, power, p); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &DomainError{Field: "sampleSize", Message: fmt.Sprintf("must be positive, got %v", n)}
	}

	zAlpha, err := stats.Quantile(1 - alpha/2) // two-sided
	if err != nil {
		return 0, err
	}
	zPower, err := stats.Quantile(power) // one-sided
	if err != nil {
		return 0, err
	}

	return (zAlpha + zPower) * math.Sqrt(2*p*(1-p)/n), nil
}

// ComputeSeries evaluates the MDE for every day from 1 through MaxDays with
// n = DailySampleSize * day. All inputs are validated before any point is
// computed; on error no points are returned.
func ComputeSeries(scenario config.Scenario) ([]Point, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}

	points := make([]Point, 0, scenario.MaxDays)
	for day := 1; day <= scenario.MaxDays; day++ {
		n := scenario.DailySampleSize * day
		delta, err := MinimalDetectableEffect(scenario.Alpha, scenario.Power, scenario.BaselineRate, float64(n))
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			Day:         day,
			SampleSize:  n,
			MDEAbsolute: delta,
			MDEPercent:  delta / scenario.BaselineRate * constants.PercentageMultiplier,
		})
	}

	return points, nil
}

// GetPlan computes the forecast Series for all active Scenarios. A domain
// error in any scenario aborts the whole run.
func GetPlan(logger *zap.Logger, conf config.Configuration) ([]Series, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Series
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "planner.GetPlan"),
			)
			continue
		}

		points, err := ComputeSeries(scenario)
		if err != nil {
			return nil, err
		}

		logger.Debug("computed scenario forecast",
			zap.String("op", "planner.GetPlan"),
			zap.String("scenario", scenario.Name),
			zap.Int("days", len(points)),
		)

		results = append(results, Series{Name: scenario.Name, Points: points})
	}

	return results, nil
}

func validateScenario(scenario config.Scenario) error {
	if err := validateInputs(scenario.Alpha, scenario.Power, scenario.BaselineRate); err != nil {
		return err
	}
	if scenario.DailySampleSize <= 0 {
		return &DomainError{Field: "dailySampleSize", Message: fmt.Sprintf("must be positive, got %d", scenario.DailySampleSize)}
	}
	if scenario.MaxDays <= 0 {
		return &DomainError{Field: "maxDays", Message: fmt.Sprintf("must be positive, got %d", scenario.MaxDays)}
	}
	return nil
}

func validateInputs(alpha, power, p float64) error {
	if alpha <= 0 || alpha >= 1 {
		return &DomainError{Field: "alpha", Message: fmt.Sprintf("must be strictly between 0 and 1, got %v", alpha)}
	}
	if power <= 0 || power >= 1 {
		return &DomainError{Field: "power", Message: fmt.Sprintf("must be strictly between 0 and 1, got %v", power)}
	}
	if p <= 0 || p >= 1 {
		return &DomainError{Field: "baselineRate", Message: fmt.Sprintf("must be strictly between 0 and 1, got %v", p)}
	}
	return nil
}
