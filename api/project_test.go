package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oncurve/oncurve-api/schema"
	"github.com/oncurve/oncurve-api/store"
	storemocks "github.com/oncurve/oncurve-api/store/mocks"
)

func testProjectRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/project", s.createProject)
	router.GET("/project/:projectID", s.getProject)
	return router
}

func TestCreateProject(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := storemocks.NewMockOncurveCore(ctl)

	s := Server{
		store: core,
	}

	project := schema.Project{
		ID:   uuid.New(),
		Name: "NCT01234567 OS",
	}
	core.EXPECT().CreateProject("NCT01234567 OS").Return(&project, nil).Times(1)

	router := testProjectRouter(&s)

	req := httptest.NewRequest("POST", "/project", jsonBody([]byte(`{"name": "NCT01234567 OS"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Project
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, project.ID, jResp.ID, "wrong project id")
	assert.Equal(t, project.Name, jResp.Name, "wrong project name")
}

func TestGetProjectNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := storemocks.NewMockOncurveCore(ctl)

	s := Server{
		store: core,
	}

	core.EXPECT().GetProject("missing").Return(nil, store.ErrProjectNotFound).Times(1)

	router := testProjectRouter(&s)

	req := httptest.NewRequest("GET", "/project/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1100), jResp.Error.Code, "wrong error code")
}

func TestCreateProjectWithoutStore(t *testing.T) {
	s := Server{}
	router := testProjectRouter(&s)

	req := httptest.NewRequest("POST", "/project", jsonBody([]byte(`{"name": "x"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
}
