package api

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncurve/oncurve-api/extraction"
	"github.com/oncurve/oncurve-api/schema"
)

func (s *Server) extractCurve(c *gin.Context) {
	var params struct {
		ImageBase64          string  `json:"image_base64" binding:"required"`
		RiskTableImageBase64 string  `json:"risk_table_image_base64"`
		Granularity          float64 `json:"granularity"`
		EndpointType         string  `json:"endpoint_type"`
		Arm                  string  `json:"arm"`
		APIProvider          string  `json:"api_provider"`
		ProjectID            string  `json:"project_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	result := s.extraction.Extract(c.Request.Context(), &extraction.ExtractRequest{
		ImageBase64:          params.ImageBase64,
		RiskTableImageBase64: params.RiskTableImageBase64,
		Granularity:          params.Granularity,
		EndpointType:         params.EndpointType,
		Arm:                  params.Arm,
		APIProvider:          params.APIProvider,
	})

	// persistence is a post-processing side effect: a missing store or a
	// failed write never costs the caller the extraction itself
	if result.Success && params.ProjectID != "" && s.mongoStore != nil {
		s.persistExtraction(params.ProjectID, params.ImageBase64, result.Curves)
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) persistExtraction(projectID, imageBase64 string, curves []schema.ExtractedCurve) {
	image, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		log.WithField("project_id", projectID).Warn("extraction image is not valid base64, skipping persistence")
		return
	}

	digest, created, err := s.mongoStore.SaveExtractionImage(projectID, image)
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Warn("save extraction image")
		return
	}
	if !created {
		log.WithField("digest", digest).Debug("extraction image already stored, deduplicated")
	}

	if err := s.mongoStore.SaveCurves(projectID, digest, curves); err != nil {
		log.WithField("project_id", projectID).WithError(err).Warn("save extracted curves")
	}
}
