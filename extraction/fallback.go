package extraction

import (
	"fmt"
	"math/rand"

	"github.com/oncurve/oncurve-api/schema"
)

const (
	simulatedPoints   = 25
	simulatedRiskRows = 7
	survivalFloor     = 0.05
	atRiskFloor       = 10
)

// SimulatedExtraction returns a monotonically-decreasing synthetic curve
// with a plausible risk table. The shape is fixed, the values are not; it
// exists so validation, reconstruction and preview stay exercisable when
// the vision service is unavailable.
func SimulatedExtraction(arm string) schema.ExtractionResult {
	maxTime := 36 + rand.Float64()*24

	points := make([]schema.DataPoint, 0, simulatedPoints)
	survival := 1.0
	for i := 0; i < simulatedPoints; i++ {
		if i > 0 {
			survival -= 0.01 + rand.Float64()*0.04
			if survival < survivalFloor {
				survival = survivalFloor
			}
		}
		points = append(points, schema.DataPoint{
			ID:       fmt.Sprintf("sim_%d", i),
			Time:     maxTime * float64(i) / float64(simulatedPoints-1),
			Survival: survival,
		})
	}

	atRisk := 100 + rand.Intn(100)
	riskTable := make([]schema.RiskTableRow, 0, simulatedRiskRows)
	for i := 0; i < simulatedRiskRows; i++ {
		events := 5 + rand.Intn(15)
		riskTable = append(riskTable, schema.RiskTableRow{
			Time:   float64(i) * 6,
			AtRisk: atRisk,
			Events: events,
		})
		atRisk -= events
		if atRisk < atRiskFloor {
			atRisk = atRiskFloor
		}
	}

	name := arm
	if name == "" {
		name = "Simulated Arm"
	}

	curve := schema.ExtractedCurve{
		ID:        "simulated",
		Name:      name,
		Color:     "#1f77b4",
		Points:    points,
		RiskTable: riskTable,
	}

	return schema.ExtractionResult{
		Success:    true,
		Points:     points,
		Curves:     []schema.ExtractedCurve{curve},
		RiskTable:  riskTable,
		AxisRanges: defaultAxisRanges(),
		Metadata: &schema.ExtractionMetadata{
			ArmNames:     []string{name},
			HasRiskTable: true,
			Simulated:    true,
		},
	}
}
