package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastrogi/advocacia-sub002/composer"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/pkg/tracing"
)

func (s *Server) handleComposeTypeForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	petitionType, err := s.strg.PetitionType().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if !petitionType.UseDynamicForm {
		s.respondError(c, models.NewValidationError("petition_type", "dynamic form is disabled for this petition type"))
		return
	}

	s.composeForm(c, models.TypeRef(id))
}

func (s *Server) handleComposeModelForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := s.strg.PetitionModel().GetByID(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	s.composeForm(c, models.ModelRef(id))
}

func (s *Server) composeForm(c *gin.Context, parent models.ParentRef) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api.ComposeForm", parent)
	defer span.Finish()

	result, err := s.compose(ctx, parent)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) compose(ctx context.Context, parent models.ParentRef) (*models.ComposeResult, error) {
	data, err := s.strg.SectionLink().GetComposeData(ctx, parent)
	if err != nil {
		s.log.Error("---ComposeForm--->>>", logger.Error(err))
		return nil, err
	}

	result := composer.Compose(*data)

	// A dangling link degrades the form instead of failing it.
	for _, dangling := range result.Dangling {
		s.log.Warn("---ComposeForm---> dangling link skipped",
			logger.Int64("link_id", dangling.LinkID),
			logger.Int64("section_id", dangling.SectionID),
		)
	}

	return &result, nil
}
