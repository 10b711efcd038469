package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncurve/oncurve-api/ipd"
	"github.com/oncurve/oncurve-api/kmvalidate"
	"github.com/oncurve/oncurve-api/schema"
)

func (s *Server) generateIPD(c *gin.Context) {
	var params struct {
		Endpoints []ipd.EndpointRequest `json:"endpoints" binding:"required"`
		ProjectID string                `json:"project_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Endpoints) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// entries with blocking validation errors are rejected up front;
	// reconstruction is never attempted on them
	accepted := make([]ipd.EndpointRequest, 0, len(params.Endpoints))
	var rejected []schema.EndpointValidationFailure
	for _, ep := range params.Endpoints {
		v := kmvalidate.Validate(ep.Points, ep.RiskTable)
		if !v.Valid {
			rejected = append(rejected, schema.EndpointValidationFailure{
				Endpoint: ep.EndpointType,
				Arm:      ep.Arm,
				Result:   v,
			})
			continue
		}
		accepted = append(accepted, ep)
	}

	result := s.ipdService.GenerateIPD(c.Request.Context(), accepted, params.ProjectID)
	result.Rejected = rejected

	c.JSON(http.StatusOK, result)
}
