package vision_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oncurve/oncurve-api/external/vision"
	"github.com/oncurve/oncurve-api/schema"
)

func TestExtractCurve(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract-km-curve", r.URL.Path, "wrong path")

		var req vision.ExtractRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.Nil(t, err, "wrong request decode")
		assert.Equal(t, "OS", req.EndpointType, "wrong endpoint type")

		resp := vision.ExtractResponse{
			Success: true,
			Curves: []vision.Curve{
				{
					ID:    "curve_0",
					Name:  "Chemo",
					Color: "#ff0000",
					Points: []schema.DataPoint{
						{Time: 0, Survival: 1.0},
						{Time: 6, Survival: 0.8},
					},
				},
			},
			Points: []schema.DataPoint{
				{Time: 0, Survival: 1.0},
				{Time: 6, Survival: 0.8},
			},
		}
		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	v := vision.New(ts.Client(), ts.URL)
	resp, err := v.ExtractCurve(context.Background(), &vision.ExtractRequest{
		ImageBase64:  "aW1hZ2U=",
		Granularity:  0.25,
		EndpointType: "OS",
		Arm:          "Chemo",
		APIProvider:  "anthropic",
	})

	assert.Nil(t, err, "wrong ExtractCurve")
	assert.Len(t, resp.Curves, 1, "wrong curve count")
	assert.Equal(t, "Chemo", resp.Curves[0].Name, "wrong curve name")
}

func TestExtractCurveRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		b, _ := json.Marshal(vision.ExtractResponse{
			Success: false,
			Error:   "axis calibration failed",
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	v := vision.New(ts.Client(), ts.URL)
	_, err := v.ExtractCurve(context.Background(), &vision.ExtractRequest{ImageBase64: "aW1hZ2U="})

	assert.Error(t, err, "rejected extraction should error")
	assert.Contains(t, err.Error(), "axis calibration failed", "wrong error message")
}

func TestExtractCurveServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	v := vision.New(ts.Client(), ts.URL)
	_, err := v.ExtractCurve(context.Background(), &vision.ExtractRequest{ImageBase64: "aW1hZ2U="})

	assert.Error(t, err, "non-2xx should error")
}

func TestExtractCurveEmptyEndpoint(t *testing.T) {
	v := vision.New(http.DefaultClient, "")
	_, err := v.ExtractCurve(context.Background(), &vision.ExtractRequest{})

	assert.Equal(t, vision.ErrEmptyEndpoint, err, "wrong error for empty endpoint")
}
