package extraction_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oncurve/oncurve-api/external/mocks"
	"github.com/oncurve/oncurve-api/external/vision"
	"github.com/oncurve/oncurve-api/extraction"
	"github.com/oncurve/oncurve-api/schema"
)

func TestExtractNormalizesCurves(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).Return(&vision.ExtractResponse{
		Success: true,
		Curves: []vision.Curve{
			{
				ID:    "arm_a",
				Name:  "Treatment",
				Color: "#d62728",
				Points: []schema.DataPoint{
					{Time: 0, Survival: 1.0},
					{Time: 6, Survival: 0.85, ID: "kept"},
				},
				ResampledPoints: []schema.DataPoint{
					{Time: 0, Survival: 1.0},
				},
				RiskTable: []schema.RiskTableRow{
					{Time: 0, AtRisk: 120},
				},
			},
			{
				Name: "Control",
				Points: []schema.DataPoint{
					{Time: 0, Survival: 1.0},
				},
			},
		},
		AxisRanges: &schema.AxisRanges{XMin: 0, XMax: 48, YMin: 0, YMax: 1},
		Metadata: &vision.Metadata{
			ArmNames:     []string{"Treatment", "Control"},
			OutcomeType:  "OS",
			HasRiskTable: true,
		},
	}, nil).Times(1)

	s := extraction.NewService(v)
	result := s.Extract(context.Background(), &extraction.ExtractRequest{
		ImageBase64: "aW1hZ2U=",
	})

	assert.True(t, result.Success, "wrong success")
	assert.Len(t, result.Curves, 2, "wrong curve count")

	// ids are synthesized only where missing
	assert.Equal(t, "arm_a_0", result.Curves[0].Points[0].ID, "wrong synthetic point id")
	assert.Equal(t, "kept", result.Curves[0].Points[1].ID, "existing id must be preserved")
	assert.Equal(t, "arm_a_rs_0", result.Curves[0].ResampledPoints[0].ID, "wrong resampled point id")
	assert.Equal(t, "curve_1", result.Curves[1].ID, "wrong synthetic curve id")

	// first curve mirrored for single-curve consumers
	assert.Equal(t, result.Curves[0].Points, result.Points, "points must mirror the first curve")

	assert.Equal(t, 48.0, result.AxisRanges.XMax, "wrong axis range")
	assert.Equal(t, "OS", result.Metadata.OutcomeType, "wrong metadata")
}

func TestExtractDefaultsAxisRanges(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).Return(&vision.ExtractResponse{
		Success: true,
		Points: []schema.DataPoint{
			{Time: 0, Survival: 1.0},
			{Time: 12, Survival: 0.7},
		},
	}, nil).Times(1)

	s := extraction.NewService(v)
	result := s.Extract(context.Background(), &extraction.ExtractRequest{ImageBase64: "aW1hZ2U="})

	assert.True(t, result.Success, "wrong success")
	assert.Len(t, result.Curves, 1, "flat point list must become a single curve")
	assert.Equal(t, 36.0, result.AxisRanges.XMax, "wrong default axis range")
	assert.Equal(t, 1.0, result.AxisRanges.YMax, "wrong default axis range")
}

func TestExtractFillsRequestDefaults(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *vision.ExtractRequest) (*vision.ExtractResponse, error) {
			assert.Equal(t, 0.25, req.Granularity, "wrong default granularity")
			assert.Equal(t, "OS", req.EndpointType, "wrong default endpoint type")
			assert.Equal(t, "Treatment", req.Arm, "wrong default arm")
			assert.Equal(t, "anthropic", req.APIProvider, "wrong default provider")
			return &vision.ExtractResponse{
				Success: true,
				Points:  []schema.DataPoint{{Time: 0, Survival: 1.0}},
			}, nil
		}).Times(1)

	s := extraction.NewService(v)
	s.Extract(context.Background(), &extraction.ExtractRequest{ImageBase64: "aW1hZ2U="})
}

func TestExtractFallsBackOnEmptyResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// success with no curve data is still a failed extraction
	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).Return(&vision.ExtractResponse{
		Success: true,
	}, nil).Times(1)

	s := extraction.NewService(v)
	result := s.Extract(context.Background(), &extraction.ExtractRequest{
		ImageBase64: "aW1hZ2U=",
		Arm:         "Chemo",
	})

	assert.True(t, result.Success, "wrong success")
	assert.NotEmpty(t, result.Points, "successful extraction must carry points")
	assert.True(t, result.Metadata.Simulated, "empty extraction must degrade to simulated")
	assert.Equal(t, "Chemo", result.Curves[0].Name, "wrong simulated arm name")
}

func TestExtractClampsSurvival(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).Return(&vision.ExtractResponse{
		Success: true,
		Points: []schema.DataPoint{
			{Time: 0, Survival: 1.04},
			{Time: 6, Survival: 0.7},
			{Time: 12, Survival: -0.02},
		},
	}, nil).Times(1)

	s := extraction.NewService(v)
	result := s.Extract(context.Background(), &extraction.ExtractRequest{ImageBase64: "aW1hZ2U="})

	assert.True(t, result.Success, "wrong success")
	assert.Equal(t, 1.0, result.Points[0].Survival, "survival above 1 must be clamped")
	assert.Equal(t, 0.7, result.Points[1].Survival, "in-range survival must pass through")
	assert.Equal(t, 0.0, result.Points[2].Survival, "negative survival must be clamped")
}

func TestExtractFallsBackOnFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVision(ctl)
	v.EXPECT().ExtractCurve(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("service unavailable")).Times(1)

	s := extraction.NewService(v)
	result := s.Extract(context.Background(), &extraction.ExtractRequest{
		ImageBase64: "aW1hZ2U=",
		Arm:         "Chemo",
	})

	// failure is never surfaced; the caller gets a simulated curve instead
	assert.True(t, result.Success, "wrong success")
	assert.NotEmpty(t, result.Points, "simulated curve must carry points")
	assert.True(t, result.Metadata.Simulated, "wrong simulated flag")
	assert.Equal(t, "Chemo", result.Curves[0].Name, "wrong simulated arm name")
}
