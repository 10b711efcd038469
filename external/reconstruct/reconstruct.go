package reconstruct

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

const reconstructPath = "/reconstruct-ipd"

var (
	ErrEmptyEndpoint = fmt.Errorf("empty reconstruction service endpoint")
)

// Reconstructor inverts an aggregate KM curve plus at-risk counts into
// pseudo individual patient data (Guyot-style).
type Reconstructor interface {
	Reconstruct(ctx context.Context, req *Request) (*Response, error)
}

type reconstructClient struct {
	httpClient *http.Client
	endpoint   string
}

type Request struct {
	KMTimes       []float64 `json:"km_times"`
	KMSurvival    []float64 `json:"km_survival"`
	AtRiskTimes   []float64 `json:"atrisk_times"`
	AtRiskN       []int     `json:"atrisk_n"`
	TotalPatients int       `json:"total_patients"`
}

type PatientData struct {
	Time  []float64 `json:"time"`
	Event []int     `json:"event"`
}

type Summary struct {
	NPatients int `json:"n_patients"`
	NEvents   int `json:"n_events"`
	NCensored int `json:"n_censored"`
}

type Response struct {
	Success bool        `json:"success"`
	Data    PatientData `json:"data"`
	Summary Summary     `json:"summary"`
	Error   string      `json:"error,omitempty"`
}

func (r *reconstructClient) Reconstruct(ctx context.Context, req *Request) (*Response, error) {
	if r.endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	body, err := json.Marshal(req)
	if nil != err {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+reconstructPath, bytes.NewReader(body))
	if nil != err {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reconstruction service responded with status %d", resp.StatusCode)
	}

	var jResp Response
	if err := json.Unmarshal(d, &jResp); nil != err {
		return nil, err
	}

	if !jResp.Success {
		return nil, fmt.Errorf("reconstruction rejected: %s", jResp.Error)
	}

	if len(jResp.Data.Time) != len(jResp.Data.Event) {
		return nil, fmt.Errorf("reconstruction returned %d times for %d events", len(jResp.Data.Time), len(jResp.Data.Event))
	}

	return &jResp, nil
}

func New(client *http.Client, endpoint string) Reconstructor {
	return &reconstructClient{
		httpClient: client,
		endpoint:   endpoint,
	}
}
