package extraction

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/oncurve/oncurve-api/consts"
	"github.com/oncurve/oncurve-api/external/vision"
	"github.com/oncurve/oncurve-api/schema"
)

const logPrefix = "extraction"

// Extractor digitizes a KM figure into curve data. Implemented by Service;
// mocked in handler tests.
type Extractor interface {
	Extract(ctx context.Context, req *ExtractRequest) schema.ExtractionResult
}

type ExtractRequest struct {
	ImageBase64          string
	RiskTableImageBase64 string
	Granularity          float64
	EndpointType         string
	Arm                  string
	APIProvider          string
}

// Service orchestrates the vision collaborator and normalizes its
// loosely-typed response into the canonical multi-curve representation.
// Any collaborator failure degrades to a simulated curve so a human can
// still correct points by hand afterwards.
type Service struct {
	vision vision.Vision
}

func NewService(v vision.Vision) *Service {
	return &Service{
		vision: v,
	}
}

func (s *Service) Extract(ctx context.Context, req *ExtractRequest) schema.ExtractionResult {
	if req.Granularity <= 0 {
		req.Granularity = consts.DEFAULT_GRANULARITY
	}
	if req.EndpointType == "" {
		req.EndpointType = consts.ENDPOINT_OS
	}
	if req.Arm == "" {
		req.Arm = consts.DEFAULT_ARM
	}
	if req.APIProvider == "" {
		req.APIProvider = consts.PROVIDER_ANTHROPIC
	}

	resp, err := s.vision.ExtractCurve(ctx, &vision.ExtractRequest{
		ImageBase64:          req.ImageBase64,
		RiskTableImageBase64: req.RiskTableImageBase64,
		Granularity:          req.Granularity,
		EndpointType:         req.EndpointType,
		Arm:                  req.Arm,
		APIProvider:          req.APIProvider,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"endpoint": req.EndpointType,
			"arm":      req.Arm,
			"error":    err,
		}).Warn("km extraction failed, returning simulated curve")
		return SimulatedExtraction(req.Arm)
	}

	result := normalize(resp)

	// a successful result must carry at least one curve with points; an
	// empty extraction is a collaborator failure in disguise
	if len(result.Curves) == 0 || len(result.Curves[0].Points) == 0 {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"endpoint": req.EndpointType,
			"arm":      req.Arm,
		}).Warn("vision service returned no curve data, returning simulated curve")
		return SimulatedExtraction(req.Arm)
	}

	return result
}

// normalize converts the collaborator response into the strict internal
// model: synthetic ids for points missing one, events defaulted to zero by
// decoding, and the first curve mirrored into Points for single-curve
// consumers.
func normalize(resp *vision.ExtractResponse) schema.ExtractionResult {
	curves := make([]schema.ExtractedCurve, 0, len(resp.Curves))
	for i, c := range resp.Curves {
		id := c.ID
		if id == "" {
			id = fmt.Sprintf("curve_%d", i)
		}

		curves = append(curves, schema.ExtractedCurve{
			ID:              id,
			Name:            c.Name,
			Color:           c.Color,
			Points:          assignPointIDs(id, "", c.Points),
			ResampledPoints: assignPointIDs(id, "rs_", c.ResampledPoints),
			RiskTable:       c.RiskTable,
		})
	}

	// Older extractions carry a flat point list with no curves array.
	if len(curves) == 0 && len(resp.Points) > 0 {
		curves = append(curves, schema.ExtractedCurve{
			ID:        "curve_0",
			Name:      "Curve 1",
			Points:    assignPointIDs("curve_0", "", resp.Points),
			RiskTable: resp.RiskTable,
		})
	}

	result := schema.ExtractionResult{
		Success:    true,
		Curves:     curves,
		RiskTable:  resp.RiskTable,
		AxisRanges: defaultAxisRanges(),
	}

	if len(curves) > 0 {
		result.Points = curves[0].Points
	}
	if resp.AxisRanges != nil {
		result.AxisRanges = *resp.AxisRanges
	}
	if resp.Metadata != nil {
		result.Metadata = &schema.ExtractionMetadata{
			ArmNames:     resp.Metadata.ArmNames,
			OutcomeType:  resp.Metadata.OutcomeType,
			HasRiskTable: resp.Metadata.HasRiskTable,
		}
	}

	return result
}

func assignPointIDs(curveID, kind string, points []schema.DataPoint) []schema.DataPoint {
	if points == nil {
		return nil
	}

	out := make([]schema.DataPoint, len(points))
	for i, p := range points {
		if p.ID == "" {
			p.ID = fmt.Sprintf("%s_%s%d", curveID, kind, i)
		}
		// survival is a probability; collaborator values occasionally
		// overshoot the axis and are clamped here rather than leaked
		if p.Survival < 0 {
			p.Survival = 0
		} else if p.Survival > 1 {
			p.Survival = 1
		}
		out[i] = p
	}
	return out
}

func defaultAxisRanges() schema.AxisRanges {
	return schema.AxisRanges{
		XMin: 0,
		XMax: 36,
		YMin: 0,
		YMax: 1,
	}
}
