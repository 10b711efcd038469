package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/oncurve/oncurve-api/schema"
)

const extractPath = "/extract-km-curve"

var (
	ErrEmptyEndpoint = fmt.Errorf("empty vision service endpoint")
)

// Vision is the curve digitization collaborator. It turns a KM plot image
// (and optionally its risk-table crop) into curve coordinates.
type Vision interface {
	ExtractCurve(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error)
}

type visionClient struct {
	httpClient *http.Client
	endpoint   string
}

type ExtractRequest struct {
	ImageBase64          string  `json:"image_base64"`
	RiskTableImageBase64 string  `json:"risk_table_image_base64,omitempty"`
	Granularity          float64 `json:"granularity"`
	EndpointType         string  `json:"endpoint_type"`
	Arm                  string  `json:"arm"`
	APIProvider          string  `json:"api_provider"`
}

// Curve is the loosely-typed curve shape returned by the service. Point and
// risk-row ids may be missing; the orchestrator assigns synthetic ones.
type Curve struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Color           string                `json:"color"`
	Points          []schema.DataPoint    `json:"points"`
	ResampledPoints []schema.DataPoint    `json:"resampledPoints,omitempty"`
	RiskTable       []schema.RiskTableRow `json:"riskTable,omitempty"`
}

type Metadata struct {
	ArmNames     []string `json:"arm_names,omitempty"`
	OutcomeType  string   `json:"outcome_type,omitempty"`
	HasRiskTable bool     `json:"has_risk_table,omitempty"`
}

type ExtractResponse struct {
	Success    bool                  `json:"success"`
	Points     []schema.DataPoint    `json:"points,omitempty"`
	Curves     []Curve               `json:"curves,omitempty"`
	RiskTable  []schema.RiskTableRow `json:"riskTable,omitempty"`
	AxisRanges *schema.AxisRanges    `json:"axisRanges,omitempty"`
	Metadata   *Metadata             `json:"metadata,omitempty"`
	Error      string                `json:"error,omitempty"`
}

func (v *visionClient) ExtractCurve(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error) {
	if v.endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	body, err := json.Marshal(req)
	if nil != err {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+extractPath, bytes.NewReader(body))
	if nil != err {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(httpReq)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision service responded with status %d", resp.StatusCode)
	}

	var r ExtractResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	if !r.Success {
		return nil, fmt.Errorf("vision service rejected extraction: %s", r.Error)
	}

	return &r, nil
}

func New(client *http.Client, endpoint string) Vision {
	return &visionClient{
		httpClient: client,
		endpoint:   endpoint,
	}
}
