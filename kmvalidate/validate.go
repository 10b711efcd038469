package kmvalidate

import (
	"fmt"
	"sort"

	"github.com/oncurve/oncurve-api/schema"
)

const (
	minCurvePoints = 5
	minRiskRows    = 2
	tableOverhang  = 1.1
)

// Validate checks digitized curve data against the domain invariants that
// must hold before IPD reconstruction is attempted. All rules are evaluated;
// violations accumulate rather than short-circuit. Errors block
// reconstruction, warnings do not.
func Validate(points []schema.DataPoint, riskTable []schema.RiskTableRow) schema.ValidationResult {
	errors := []string{}
	warnings := []string{}

	if len(points) < minCurvePoints {
		errors = append(errors, fmt.Sprintf("curve must have at least %d points, got %d", minCurvePoints, len(points)))
	}
	if len(riskTable) < minRiskRows {
		errors = append(errors, fmt.Sprintf("risk table must have at least %d rows, got %d", minRiskRows, len(riskTable)))
	}

	for _, p := range points {
		if p.Survival > 1.0 {
			errors = append(errors, fmt.Sprintf("survival %.4f exceeds 1.0 at time %.2f", p.Survival, p.Time))
		}
		if p.Survival < 0 {
			errors = append(errors, fmt.Sprintf("survival %.4f is negative at time %.2f", p.Survival, p.Time))
		}
		if p.Time < 0 {
			errors = append(errors, fmt.Sprintf("negative time %.2f", p.Time))
		}
	}

	// Range checks below need a non-empty curve; the point-count error above
	// already covers the empty case.
	if len(points) > 0 {
		ordered := make([]schema.DataPoint, len(points))
		copy(ordered, points)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Time < ordered[j].Time
		})

		for i := 1; i < len(ordered); i++ {
			if ordered[i].Survival > ordered[i-1].Survival {
				warnings = append(warnings, fmt.Sprintf(
					"survival rises from %.4f to %.4f at time %.2f",
					ordered[i-1].Survival, ordered[i].Survival, ordered[i].Time))
			}
		}

		if len(riskTable) > 0 {
			curveMax := ordered[len(ordered)-1].Time
			tableMax := riskTable[0].Time
			for _, row := range riskTable[1:] {
				if row.Time > tableMax {
					tableMax = row.Time
				}
			}
			if tableMax > curveMax*tableOverhang {
				warnings = append(warnings, fmt.Sprintf(
					"risk table extends beyond curve data (table max %.2f, curve max %.2f)",
					tableMax, curveMax))
			}
		}
	}

	return schema.ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
