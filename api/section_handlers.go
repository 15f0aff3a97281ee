package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/pkg/tracing"
)

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}

	return id, true
}

func (s *Server) handleCreateSection(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api.CreateSection", c.Request.URL.Path)
	defer span.Finish()

	var req models.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("---CreateSection--->>>", logger.String("slug", req.Slug))

	section, err := s.strg.Section().Create(ctx, &req)
	if err != nil {
		s.log.Error("---CreateSection--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

func (s *Server) handleGetSection(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	section, err := s.strg.Section().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (s *Server) handleListSections(c *gin.Context) {
	req := models.GetAllSectionsRequest{
		Search:     c.Query("search"),
		OnlyActive: cast.ToBool(c.Query("only_active")),
		Limit:      cast.ToUint64(c.DefaultQuery("limit", cast.ToString(s.cfg.DefaultPageLimit))),
		Offset:     cast.ToUint64(c.Query("offset")),
	}

	resp, err := s.strg.Section().GetAll(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---ListSections--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleUpdateSection(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	s.log.Info("---UpdateSection--->>>", logger.Int64("id", id), logger.Int("version", req.Version))

	section, err := s.strg.Section().Update(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---UpdateSection--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (s *Server) handleUpdateFieldsSchema(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req models.UpdateFieldsSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SectionID = id

	s.log.Info("---UpdateFieldsSchema--->>>", logger.Int64("id", id), logger.Int("fields", len(req.FieldsSchema)))

	section, err := s.strg.Section().UpdateFieldsSchema(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---UpdateFieldsSchema--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (s *Server) handleDeleteSection(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.log.Info("---DeleteSection--->>>", logger.Int64("id", id))

	if err := s.strg.Section().Delete(c.Request.Context(), id); err != nil {
		s.log.Error("---DeleteSection--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
