package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncurve/oncurve-api/kmvalidate"
	"github.com/oncurve/oncurve-api/schema"
)

func (s *Server) validateKMData(c *gin.Context) {
	var params struct {
		Points    []schema.DataPoint    `json:"points"`
		RiskTable []schema.RiskTableRow `json:"riskTable"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	c.JSON(http.StatusOK, kmvalidate.Validate(params.Points, params.RiskTable))
}
