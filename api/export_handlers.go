package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rcastrogi/advocacia-sub002/document"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleExportSections(c *gin.Context) {
	s.log.Info("---ExportSections--->>>")

	resp, err := s.strg.Section().GetAll(c.Request.Context(), &models.GetAllSectionsRequest{})
	if err != nil {
		s.log.Error("---ExportSections--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	file, err := document.SectionsWorkbook(resp.Sections)
	if err != nil {
		s.log.Error("---ExportSections--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sections.xlsx"`)
	c.Header("Content-Type", xlsxContentType)

	if err := file.Write(c.Writer); err != nil {
		s.log.Error("---ExportSections--->>>", logger.Error(err))
	}
}

func (s *Server) handleExportPetitions(c *gin.Context) {
	s.log.Info("---ExportPetitions--->>>")

	resp, err := s.strg.Petition().GetAll(c.Request.Context(), &models.GetAllPetitionsRequest{})
	if err != nil {
		s.log.Error("---ExportPetitions--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	file, err := document.PetitionsWorkbook(resp.Petitions)
	if err != nil {
		s.log.Error("---ExportPetitions--->>>", logger.Error(err))
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="petitions.xlsx"`)
	c.Header("Content-Type", xlsxContentType)

	if err := file.Write(c.Writer); err != nil {
		s.log.Error("---ExportPetitions--->>>", logger.Error(err))
	}
}
