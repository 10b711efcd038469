package statcomp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/oncurve/oncurve-api/schema"
)

const validatePath = "/validate-ipd"

var (
	ErrEmptyEndpoint = fmt.Errorf("empty statistical comparison service endpoint")
)

// Comparator computes the hazard ratio, its confidence interval and a
// p-value between reconstructed arms.
type Comparator interface {
	ValidateIPD(ctx context.Context, arms []ArmData) (*Response, error)
}

type statClient struct {
	httpClient *http.Client
	endpoint   string
}

type ArmData struct {
	Arm  string                    `json:"arm"`
	Data []schema.IPDPatientRecord `json:"data"`
}

type request struct {
	Arms []ArmData `json:"arms"`
}

type Response struct {
	Success       bool                `json:"success"`
	HazardRatio   float64             `json:"hazardRatio"`
	HRLowerCI     float64             `json:"hrLowerCI"`
	HRUpperCI     float64             `json:"hrUpperCI"`
	PValue        float64             `json:"pValue"`
	ArmStats      []schema.IPDArmStat `json:"armStats,omitempty"`
	ReferenceArm  string              `json:"referenceArm,omitempty"`
	ComparisonArm string              `json:"comparisonArm,omitempty"`
	Error         string              `json:"error,omitempty"`
}

func (s *statClient) ValidateIPD(ctx context.Context, arms []ArmData) (*Response, error) {
	if s.endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	body, err := json.Marshal(request{Arms: arms})
	if nil != err {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+validatePath, bytes.NewReader(body))
	if nil != err {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validation service responded with status %d", resp.StatusCode)
	}

	var jResp Response
	if err := json.Unmarshal(d, &jResp); nil != err {
		return nil, err
	}

	if !jResp.Success {
		return nil, fmt.Errorf("cross-arm validation rejected: %s", jResp.Error)
	}

	return &jResp, nil
}

func New(client *http.Client, endpoint string) Comparator {
	return &statClient{
		httpClient: client,
		endpoint:   endpoint,
	}
}
