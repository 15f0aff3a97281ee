package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
)

func (s *Server) handleCreatePetitionType(c *gin.Context) {
	var req models.PetitionType
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("---CreatePetitionType--->>>", logger.String("slug", req.Slug))

	petitionType, err := s.strg.PetitionType().Create(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---CreatePetitionType--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, petitionType)
}

func (s *Server) handleGetPetitionType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	petitionType, err := s.strg.PetitionType().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, petitionType)
}

func (s *Server) handleListPetitionTypes(c *gin.Context) {
	req := models.GetAllPetitionTypesRequest{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		OnlyActive: cast.ToBool(c.Query("only_active")),
		Limit:      cast.ToUint64(c.DefaultQuery("limit", cast.ToString(s.cfg.DefaultPageLimit))),
		Offset:     cast.ToUint64(c.Query("offset")),
	}

	resp, err := s.strg.PetitionType().GetAll(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---ListPetitionTypes--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleUpdatePetitionType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req models.PetitionType
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	s.log.Info("---UpdatePetitionType--->>>", logger.Int64("id", id))

	petitionType, err := s.strg.PetitionType().Update(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---UpdatePetitionType--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, petitionType)
}

func (s *Server) handleDeletePetitionType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.log.Info("---DeletePetitionType--->>>", logger.Int64("id", id))

	if err := s.strg.PetitionType().Delete(c.Request.Context(), id); err != nil {
		s.log.Error("---DeletePetitionType--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleCreatePetitionModel(c *gin.Context) {
	var req models.PetitionModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("---CreatePetitionModel--->>>", logger.String("slug", req.Slug))

	model, err := s.strg.PetitionModel().Create(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---CreatePetitionModel--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model)
}

func (s *Server) handleGetPetitionModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	model, err := s.strg.PetitionModel().GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model)
}

func (s *Server) handleListPetitionModels(c *gin.Context) {
	req := models.GetAllPetitionModelsRequest{
		PetitionTypeID: cast.ToInt64(c.Query("petition_type_id")),
		OnlyActive:     cast.ToBool(c.Query("only_active")),
		Limit:          cast.ToUint64(c.DefaultQuery("limit", cast.ToString(s.cfg.DefaultPageLimit))),
		Offset:         cast.ToUint64(c.Query("offset")),
	}

	resp, err := s.strg.PetitionModel().GetAll(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---ListPetitionModels--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleUpdatePetitionModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req models.PetitionModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	s.log.Info("---UpdatePetitionModel--->>>", logger.Int64("id", id))

	model, err := s.strg.PetitionModel().Update(c.Request.Context(), &req)
	if err != nil {
		s.log.Error("---UpdatePetitionModel--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model)
}

func (s *Server) handleDeletePetitionModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s.log.Info("---DeletePetitionModel--->>>", logger.Int64("id", id))

	if err := s.strg.PetitionModel().Delete(c.Request.Context(), id); err != nil {
		s.log.Error("---DeletePetitionModel--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
