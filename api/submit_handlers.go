package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/rcastrogi/advocacia-sub002/composer"
	"github.com/rcastrogi/advocacia-sub002/document"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/pkg/tracing"
)

type submitPetitionRequest struct {
	Values map[string]string `json:"values"`
}

func (s *Server) handleSubmitTypePetition(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	petitionType, err := s.strg.PetitionType().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.submitPetition(c, models.TypeRef(id), petitionType.Slug, petitionType.TemplateContent)
}

func (s *Server) handleSubmitModelPetition(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	model, err := s.strg.PetitionModel().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	template := model.TemplateContent
	if template == "" {
		// A model without its own template falls back to the type's.
		petitionType, err := s.strg.PetitionType().GetByID(c.Request.Context(), model.PetitionTypeID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		template = petitionType.TemplateContent
	}

	s.submitPetition(c, models.ModelRef(id), model.Slug, template)
}

func (s *Server) submitPetition(c *gin.Context, parent models.ParentRef, slug, template string) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api.SubmitPetition", parent)
	defer span.Finish()

	var req submitPetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("---SubmitPetition--->>>",
		logger.String("parent_kind", parent.Kind),
		logger.Int64("parent_id", parent.ID),
		logger.Int("values", len(req.Values)),
	)

	result, err := s.compose(ctx, parent)
	if err != nil {
		s.respondError(c, err)
		return
	}

	context, err := composer.Bind(*result, req.Values)
	if err != nil {
		s.log.Warn("---SubmitPetition---> binding rejected", logger.Error(err))
		s.respondError(c, err)
		return
	}

	body, err := document.Render(slug, template, context)
	if err != nil {
		s.log.Error("---SubmitPetition---> render failed", logger.Error(err))
		s.respondError(c, err)
		return
	}

	petition := &models.Petition{
		Parent:       parent,
		Context:      context,
		RenderedBody: body,
	}

	if s.uploader != nil {
		key, err := s.uploader.Upload(ctx, body)
		if err != nil {
			// Upload failure must not lose the petition, the body is kept in
			// the database either way.
			s.log.Error("---SubmitPetition---> upload failed", logger.Error(err))
		} else {
			petition.DocumentKey = key
		}
	}

	created, err := s.strg.Petition().Create(ctx, petition)
	if err != nil {
		s.log.Error("---SubmitPetition--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetPetition(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	petition, err := s.strg.Petition().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, petition)
}

func (s *Server) handleListPetitions(c *gin.Context) {
	req := models.GetAllPetitionsRequest{
		Limit:  cast.ToUint64(c.DefaultQuery("limit", cast.ToString(s.cfg.DefaultPageLimit))),
		Offset: cast.ToUint64(c.Query("offset")),
	}

	if kind := c.Query("parent_kind"); kind != "" {
		req.Parent = models.ParentRef{
			Kind: kind,
			ID:   cast.ToInt64(c.Query("parent_id")),
		}
	}

	resp, err := s.strg.Petition().GetAll(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---ListPetitions--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
