package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
	"github.com/smartaid/smartaid-backend/internal/validator"
)

// ScreeningHandler handles the applicant-facing screening flow.
type ScreeningHandler struct {
	screeningService *service.ScreeningService
}

// NewScreeningHandler creates a new ScreeningHandler.
func NewScreeningHandler(screeningService *service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{screeningService: screeningService}
}

// SubmitScreening godoc
// POST /api/v1/screenings
// Evaluates the questionnaire against every aid program and returns the
// screening report. Passing screening_id re-screens an existing session
// without losing its document checklist.
func (h *ScreeningHandler) SubmitScreening(c *gin.Context) {
	var req model.ScreeningRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	screening, err := h.screeningService.Screen(c.Request.Context(), req.Profile(), req.ScreeningID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, reportPayload(screening))
}

// GetReport godoc
// GET /api/v1/screenings/:id
// Returns the full screening report: verdicts, eligible/ineligible split,
// document checklist and the submitted profile.
func (h *ScreeningHandler) GetReport(c *gin.Context) {
	id, ok := screeningID(c)
	if !ok {
		return
	}

	screening, err := h.screeningService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrScreeningNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrScreeningNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, reportPayload(screening))
}

// UploadDocument godoc
// POST /api/v1/screenings/:id/documents
// Marks a checklist document as received.
func (h *ScreeningHandler) UploadDocument(c *gin.Context) {
	id, ok := screeningID(c)
	if !ok {
		return
	}

	var req model.UploadDocumentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry, err := h.screeningService.RecordUpload(c.Request.Context(), id, req.Program, req.Document)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScreeningNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrScreeningNotFound)
		case errors.Is(err, service.ErrProgramNotTracked):
			response.Fail(c, http.StatusNotFound, response.ErrProgramNotFound)
		case errors.Is(err, service.ErrDocumentNotTracked):
			response.Fail(c, http.StatusNotFound, response.ErrDocumentNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"program":  req.Program,
		"document": req.Document,
		"entry":    entry,
	})
}

// ClearScreening godoc
// DELETE /api/v1/screenings/:id
// Ends the applicant's session and discards the screening.
func (h *ScreeningHandler) ClearScreening(c *gin.Context) {
	id, ok := screeningID(c)
	if !ok {
		return
	}

	if err := h.screeningService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "screening cleared"})
}

func screeningID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id, true
}

func reportPayload(s *model.Screening) gin.H {
	eligible := s.EligibleVerdicts()
	if eligible == nil {
		eligible = []model.Verdict{}
	}
	ineligible := s.IneligibleVerdicts()
	if ineligible == nil {
		ineligible = []model.Verdict{}
	}
	return gin.H{
		"screening_id":        s.ID,
		"profile":             s.Profile,
		"eligibility_results": s.Verdicts,
		"eligible_programs":   eligible,
		"ineligible_programs": ineligible,
		"documents":           s.Documents,
		"created_at":          s.CreatedAt,
	}
}
