package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
	"github.com/smartaid/smartaid-backend/internal/validator"
)

// RecordHandler handles the staff case-management endpoints.
type RecordHandler struct {
	recordService    *service.RecordService
	screeningService *service.ScreeningService
	faqService       *service.FaqService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(
	recordService *service.RecordService,
	screeningService *service.ScreeningService,
	faqService *service.FaqService,
) *RecordHandler {
	return &RecordHandler{
		recordService:    recordService,
		screeningService: screeningService,
		faqService:       faqService,
	}
}

// SearchRecords godoc
// GET /api/v1/staff/records?q=...
// Returns up to ten record summaries matching the query; without a query,
// every record is listed.
func (h *RecordHandler) SearchRecords(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		summaries []model.RecordSummary
		err       error
	)
	if query == "" {
		summaries, err = h.recordService.List(c.Request.Context())
	} else {
		summaries, err = h.recordService.Search(c.Request.Context(), query)
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if summaries == nil {
		summaries = []model.RecordSummary{}
	}
	response.Success(c, http.StatusOK, gin.H{"records": summaries})
}

// GetRecord godoc
// GET /api/v1/staff/records/:student_id
// Returns the full case file including the eligible-program total.
func (h *RecordHandler) GetRecord(c *gin.Context) {
	record, ok := h.lookup(c)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"record":         record,
		"eligible_total": record.EligibleCount(),
	})
}

// UpdateRecord godoc
// PATCH /api/v1/staff/records/:student_id
// Applies one staff action: eligibility verification, a document list move,
// or a notes update.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req model.UpdateRecordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), c.Param("student_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		case errors.Is(err, service.ErrProgramNotTracked):
			response.Fail(c, http.StatusNotFound, response.ErrProgramNotFound)
		case errors.Is(err, service.ErrDocumentRequired):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// PromoteScreening godoc
// POST /api/v1/staff/screenings/:id/promote
// Persists a screening as a student record for ongoing case tracking.
func (h *RecordHandler) PromoteScreening(c *gin.Context) {
	var req model.PromoteScreeningRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	screening, err := h.screeningService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrScreeningNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrScreeningNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	record, err := h.recordService.Promote(c.Request.Context(), screening, req.Name, req.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// ListChatQueries godoc
// GET /api/v1/staff/chat-queries?unanswered=true&limit=50
// Returns recent chatbot questions for FAQ coverage review.
func (h *RecordHandler) ListChatQueries(c *gin.Context) {
	unansweredOnly := c.Query("unanswered") == "true"
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	queries, err := h.faqService.ListChatQueries(c.Request.Context(), unansweredOnly, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if queries == nil {
		queries = []model.ChatQuery{}
	}
	response.Success(c, http.StatusOK, gin.H{"queries": queries})
}

func (h *RecordHandler) lookup(c *gin.Context) (*model.StudentRecord, bool) {
	record, err := h.recordService.Get(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return nil, false
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return nil, false
	}
	return record, true
}
