package statcomp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oncurve/oncurve-api/external/statcomp"
	"github.com/oncurve/oncurve-api/schema"
)

func TestValidateIPD(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validate-ipd", r.URL.Path, "wrong path")

		var req struct {
			Arms []statcomp.ArmData `json:"arms"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.Nil(t, err, "wrong request decode")
		assert.Len(t, req.Arms, 2, "wrong arm count")

		resp := statcomp.Response{
			Success:       true,
			HazardRatio:   0.72,
			HRLowerCI:     0.58,
			HRUpperCI:     0.89,
			PValue:        0.002,
			ReferenceArm:  "Control",
			ComparisonArm: "Treatment",
			ArmStats: []schema.IPDArmStat{
				{Arm: "Control", NPatients: 100, Events: 60},
				{Arm: "Treatment", NPatients: 100, Events: 45},
			},
		}
		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	comp := statcomp.New(ts.Client(), ts.URL)
	resp, err := comp.ValidateIPD(context.Background(), []statcomp.ArmData{
		{Arm: "Control", Data: []schema.IPDPatientRecord{{PatientID: 0, Time: 3.1, Event: 1, Arm: "Control"}}},
		{Arm: "Treatment", Data: []schema.IPDPatientRecord{{PatientID: 0, Time: 5.4, Event: 0, Arm: "Treatment"}}},
	})

	assert.Nil(t, err, "wrong ValidateIPD")
	assert.Equal(t, 0.72, resp.HazardRatio, "wrong hazard ratio")
	assert.Equal(t, "Control", resp.ReferenceArm, "wrong reference arm")
}

func TestValidateIPDRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		b, _ := json.Marshal(statcomp.Response{
			Success: false,
			Error:   "cox model did not converge",
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	comp := statcomp.New(ts.Client(), ts.URL)
	_, err := comp.ValidateIPD(context.Background(), []statcomp.ArmData{{Arm: "A"}, {Arm: "B"}})

	assert.Error(t, err, "rejected validation should error")
}
