package ipd

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/oncurve/oncurve-api/external/statcomp"
	"github.com/oncurve/oncurve-api/schema"
)

// validateAcrossArms computes the hazard ratio, confidence interval and
// p-value between reconstructed arms. Simulated arms carry no patient-level
// records and are excluded; with fewer than two real arms there is nothing
// to compare and nil is returned. Validation is an enrichment: a failing
// collaborator costs the metrics, never the reconstruction itself.
func (s *Service) validateAcrossArms(ctx context.Context, results []schema.IPDArmResult) *schema.IPDValidationMetrics {
	arms := make([]statcomp.ArmData, 0, len(results))
	for _, r := range results {
		if len(r.Data) == 0 {
			continue
		}
		arms = append(arms, statcomp.ArmData{
			Arm:  r.Arm,
			Data: r.Data,
		})
	}

	if len(arms) < 2 {
		return nil
	}

	resp, err := s.comparator.ValidateIPD(ctx, arms)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"arms":   len(arms),
			"error":  err,
		}).Warn("cross-arm validation failed, omitting metrics")
		return nil
	}

	return &schema.IPDValidationMetrics{
		HazardRatio:   resp.HazardRatio,
		HRLowerCI:     resp.HRLowerCI,
		HRUpperCI:     resp.HRUpperCI,
		PValue:        resp.PValue,
		ArmStats:      resp.ArmStats,
		ReferenceArm:  resp.ReferenceArm,
		ComparisonArm: resp.ComparisonArm,
	}
}
