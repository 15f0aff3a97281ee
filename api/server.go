package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/document"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

// Server wires HTTP handlers to storage and the composition engine.
type Server struct {
	cfg      config.Config
	log      logger.LoggerI
	strg     storage.StorageI
	uploader *document.Uploader
}

func NewServer(cfg config.Config, log logger.LoggerI, strg storage.StorageI, uploader *document.Uploader) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		strg:     strg,
		uploader: uploader,
	}
}

// SetUpRouter attaches every route to a fresh gin engine.
func SetUpRouter(cfg config.Config, log logger.LoggerI, strg storage.StorageI, uploader *document.Uploader) *gin.Engine {
	server := NewServer(cfg, log, strg, uploader)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", server.handleHealth)

	v1 := router.Group("/v1")
	{
		v1.POST("/sections", server.handleCreateSection)
		v1.GET("/sections", server.handleListSections)
		v1.GET("/sections/:id", server.handleGetSection)
		v1.PUT("/sections/:id", server.handleUpdateSection)
		v1.PUT("/sections/:id/fields", server.handleUpdateFieldsSchema)
		v1.DELETE("/sections/:id", server.handleDeleteSection)

		v1.POST("/petition-types", server.handleCreatePetitionType)
		v1.GET("/petition-types", server.handleListPetitionTypes)
		v1.GET("/petition-types/:id", server.handleGetPetitionType)
		v1.PUT("/petition-types/:id", server.handleUpdatePetitionType)
		v1.DELETE("/petition-types/:id", server.handleDeletePetitionType)

		v1.POST("/petition-models", server.handleCreatePetitionModel)
		v1.GET("/petition-models", server.handleListPetitionModels)
		v1.GET("/petition-models/:id", server.handleGetPetitionModel)
		v1.PUT("/petition-models/:id", server.handleUpdatePetitionModel)
		v1.DELETE("/petition-models/:id", server.handleDeletePetitionModel)

		v1.POST("/petition-types/:id/sections", server.handleAttachToType)
		v1.POST("/petition-models/:id/sections", server.handleAttachToModel)
		v1.PUT("/petition-types/:id/sections/reorder", server.handleReorderTypeLinks)
		v1.PUT("/petition-models/:id/sections/reorder", server.handleReorderModelLinks)
		v1.PUT("/section-links/:id", server.handleUpdateLink)
		v1.DELETE("/section-links/:id", server.handleDetachLink)

		v1.GET("/petition-types/:id/form", server.handleComposeTypeForm)
		v1.GET("/petition-models/:id/form", server.handleComposeModelForm)
		v1.POST("/petition-types/:id/petitions", server.handleSubmitTypePetition)
		v1.POST("/petition-models/:id/petitions", server.handleSubmitModelPetition)

		v1.GET("/petitions", server.handleListPetitions)
		v1.GET("/petitions/:id", server.handleGetPetition)

		v1.GET("/export/sections.xlsx", server.handleExportSections)
		v1.GET("/export/petitions.xlsx", server.handleExportPetitions)
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": s.cfg.ServiceName,
		"version": s.cfg.Version,
	})
}

// respondError maps the service error taxonomy onto HTTP statuses: invalid
// admin input 400, user-facing binding failures 422, stale writes 409.
func (s *Server) respondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		bindingErr    *models.BindingError
		conflictErr   *models.ConflictError
	)

	switch {
	case errors.As(err, &bindingErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   bindingErr.Message,
			"field":   bindingErr.Field,
			"section": bindingErr.Section,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.log.Error("internal error", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
