package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
)

// ProgramHandler exposes the aid program catalog.
type ProgramHandler struct {
	catalogService *service.CatalogService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(catalogService *service.CatalogService) *ProgramHandler {
	return &ProgramHandler{catalogService: catalogService}
}

// ListPrograms godoc
// GET /api/v1/programs
// Public catalog listing: award, deadline and description per program.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"programs": h.catalogService.Summaries()})
}

// ListProgramDetails godoc
// GET /api/v1/staff/programs
// Full catalog including eligibility criteria, for staff verification work.
func (h *ProgramHandler) ListProgramDetails(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"programs": h.catalogService.Programs()})
}
