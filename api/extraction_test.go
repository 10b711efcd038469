package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oncurve/oncurve-api/api/mocks"
	"github.com/oncurve/oncurve-api/schema"
	storemocks "github.com/oncurve/oncurve-api/store/mocks"
)

func testExtractionRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/extraction", s.extractCurve)
	return router
}

func TestExtractCurve(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExtractor(ctl)

	s := Server{
		extraction: e,
	}

	result := schema.ExtractionResult{
		Success: true,
		Curves: []schema.ExtractedCurve{
			{
				ID:   "curve_0",
				Name: "Treatment",
				Points: []schema.DataPoint{
					{Time: 0, Survival: 1.0, ID: "curve_0_0"},
					{Time: 6, Survival: 0.8, ID: "curve_0_1"},
				},
			},
		},
		AxisRanges: schema.AxisRanges{XMax: 36, YMax: 1},
	}
	e.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(result).Times(1)

	router := testExtractionRouter(&s)

	body := `{"image_base64": "` + base64.StdEncoding.EncodeToString([]byte("png-bytes")) + `"}`
	req := httptest.NewRequest("POST", "/extraction", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.ExtractionResult
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, result, jResp, "wrong data")
}

func TestExtractCurveMissingImage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		extraction: mocks.NewMockExtractor(ctl),
	}

	router := testExtractionRouter(&s)

	req := httptest.NewRequest("POST", "/extraction", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1011), jResp.Error.Code, "wrong error code")
}

func TestExtractCurvePersistsWithProject(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExtractor(ctl)
	m := storemocks.NewMockMongoStore(ctl)

	s := Server{
		extraction: e,
		mongoStore: m,
	}

	image := []byte("png-bytes")
	curves := []schema.ExtractedCurve{
		{ID: "curve_0", Name: "Treatment"},
	}

	e.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(schema.ExtractionResult{
		Success: true,
		Curves:  curves,
	}).Times(1)
	m.EXPECT().SaveExtractionImage("project-1", image).Return("digest-1", true, nil).Times(1)
	m.EXPECT().SaveCurves("project-1", "digest-1", curves).Return(nil).Times(1)

	router := testExtractionRouter(&s)

	body := `{"image_base64": "` + base64.StdEncoding.EncodeToString(image) + `", "project_id": "project-1"}`
	req := httptest.NewRequest("POST", "/extraction", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestExtractCurveSkipsPersistenceWithoutProject(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExtractor(ctl)
	m := storemocks.NewMockMongoStore(ctl)

	s := Server{
		extraction: e,
		mongoStore: m,
	}

	e.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(schema.ExtractionResult{
		Success: true,
		Curves:  []schema.ExtractedCurve{{ID: "curve_0"}},
	}).Times(1)
	// no store expectations: persistence must not run without a project id

	router := testExtractionRouter(&s)

	body := `{"image_base64": "` + base64.StdEncoding.EncodeToString([]byte("png-bytes")) + `"}`
	req := httptest.NewRequest("POST", "/extraction", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestExtractCurvePersistFailureStillResponds(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockExtractor(ctl)
	m := storemocks.NewMockMongoStore(ctl)

	s := Server{
		extraction: e,
		mongoStore: m,
	}

	image := []byte("png-bytes")

	e.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(schema.ExtractionResult{
		Success: true,
		Curves:  []schema.ExtractedCurve{{ID: "curve_0"}},
	}).Times(1)
	m.EXPECT().SaveExtractionImage("project-1", image).Return("", false, assert.AnError).Times(1)

	router := testExtractionRouter(&s)

	body := `{"image_base64": "` + base64.StdEncoding.EncodeToString(image) + `", "project_id": "project-1"}`
	req := httptest.NewRequest("POST", "/extraction", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.ExtractionResult
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.Success, "extraction should survive a failed write")
}
