package ipd

import (
	"path/filepath"

	"github.com/oncurve/oncurve-api/schema"
)

// simulatedArm derives plausible summary statistics from the risk table
// alone when the reconstruction collaborator is unavailable. It produces no
// patient-level data, and the parquet extension on the file path is the
// provenance marker downstream consumers detect degraded arms by.
func (s *Service) simulatedArm(ep *EndpointRequest) schema.IPDArmResult {
	nPatients := defaultTotalPatients
	if len(ep.RiskTable) > 0 {
		nPatients = ep.RiskTable[0].AtRisk
	}

	events := 0
	for _, row := range ep.RiskTable {
		events += row.Events
	}

	medianFollowup := 0.0
	if len(ep.Points) > 0 {
		medianFollowup = ep.Points[len(ep.Points)/2].Time
	}

	return schema.IPDArmResult{
		Endpoint:       ep.EndpointType,
		Arm:            ep.Arm,
		FilePath:       filepath.Join(s.outputDir, armFileName(ep.EndpointType, ep.Arm, "parquet")),
		NPatients:      nPatients,
		Events:         events,
		NCensored:      nPatients - events,
		MedianFollowup: medianFollowup,
		Simulated:      true,
	}
}
