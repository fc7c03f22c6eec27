package validation

import (
	"fmt"

	"github.com/robrmz/MDE-Day-Planner/pkg/constants"
)

// ScenarioInfo carries the subset of a planning scenario needed for
// warning-level validation.
type ScenarioInfo struct {
	Name    string
	Active  bool
	Alpha   float64
	Power   float64
	MaxDays int
}

// ValidateScenario checks one scenario for suspicious but legal inputs and
// returns warnings. Out-of-domain values are hard errors elsewhere, not
// warnings here.
func ValidateScenario(s ScenarioInfo) []string {
	var warnings []string

	label := s.Name
	if label == "" {
		label = "(unnamed)"
	}

	if s.Alpha > constants.HighAlphaThreshold && s.Alpha < 1 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' uses alpha %.2f - above %.2f the false positive rate is usually considered too loose",
			label, s.Alpha, constants.HighAlphaThreshold))
	}

	if s.Power > 0 && s.Power < constants.LowPowerThreshold {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' targets power %.2f - a detection chance below %.0f%% makes the plan close to a coin flip",
			label, s.Power, constants.LowPowerThreshold*constants.PercentageMultiplier))
	}

	if s.MaxDays > constants.MaxReasonableHorizonDays {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' forecasts %d days - horizons beyond %d days rarely reflect a real experiment",
			label, s.MaxDays, constants.MaxReasonableHorizonDays))
	}

	return warnings
}

// ValidateScenarios validates every active scenario and flags duplicate names.
func ValidateScenarios(scenarios []ScenarioInfo) []string {
	var warnings []string

	seen := make(map[string]struct{})
	for _, scenario := range scenarios {
		if scenario.Name != "" {
			if _, dup := seen[scenario.Name]; dup {
				warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
			}
			seen[scenario.Name] = struct{}{}
		}

		if !scenario.Active {
			continue
		}
		warnings = append(warnings, ValidateScenario(scenario)...)
	}

	return warnings
}
