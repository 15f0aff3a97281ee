package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
)

func (s *Server) handleAttachToType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.attachSection(c, models.TypeRef(id))
}

func (s *Server) handleAttachToModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.attachSection(c, models.ModelRef(id))
}

func (s *Server) attachSection(c *gin.Context, parent models.ParentRef) {
	var req models.AttachSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Parent = parent

	s.log.Info("---AttachSection--->>>",
		logger.String("parent_kind", parent.Kind),
		logger.Int64("parent_id", parent.ID),
		logger.Int64("section_id", req.SectionID),
	)

	link, err := s.strg.SectionLink().Attach(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---AttachSection--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (s *Server) handleReorderTypeLinks(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.reorderLinks(c, models.TypeRef(id))
}

func (s *Server) handleReorderModelLinks(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.reorderLinks(c, models.ModelRef(id))
}

func (s *Server) reorderLinks(c *gin.Context, parent models.ParentRef) {
	var req models.ReorderLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Parent = parent

	s.log.Info("---ReorderLinks--->>>",
		logger.String("parent_kind", parent.Kind),
		logger.Int64("parent_id", parent.ID),
		logger.Int("links", len(req.LinkIDs)),
	)

	if err := s.strg.SectionLink().Reorder(c.Request.Context(), &req); err != nil {
		s.log.Error("---ReorderLinks--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	links, err := s.strg.SectionLink().GetByParent(c.Request.Context(), parent)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}

func (s *Server) handleUpdateLink(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req models.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	s.log.Info("---UpdateLink--->>>", logger.Int64("id", id))

	link, err := s.strg.SectionLink().Update(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---UpdateLink--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (s *Server) handleDetachLink(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.log.Info("---DetachLink--->>>", logger.Int64("id", id))

	if err := s.strg.SectionLink().Detach(c.Request.Context(), id); err != nil {
		s.log.Error("---DetachLink--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
