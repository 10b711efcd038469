package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncurve/oncurve-api/store"
)

func (s *Server) createProject(c *gin.Context) {
	if s.store == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
		return
	}

	var params struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	project, err := s.store.CreateProject(params.Name)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, project)
}

func (s *Server) getProject(c *gin.Context) {
	if s.store == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
		return
	}

	project, err := s.store.GetProject(c.Param("projectID"))
	if err != nil {
		if err == store.ErrProjectNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProjectNotFound)
			return
		}
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, project)
}
