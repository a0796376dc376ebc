package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
	"github.com/noah-isme/simak-api/pkg/response"
)

type enrollmentService interface {
	ListKrs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKrs], error)
	ListKhs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKhs], error)
}

// EnrollmentHandler serves the per-student KRS and KHS listings.
type EnrollmentHandler struct {
	enrollments enrollmentService
	paging      config.PaginationConfig
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService, paging config.PaginationConfig) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, paging: paging}
}

// Krs godoc
// @Summary List students with their course enrollments
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Student id or comma separated ids"
// @Param term_year_id query int false "Filter enrollments by term"
// @Param department_id query int false "Filter by department"
// @Param server_paging query bool false "Paginate on the server"
// @Param per_page query int false "Page size"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=[]models.StudentKrs,meta=pagination.Meta}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /student-krs [get]
func (h *EnrollmentHandler) Krs(c *gin.Context) {
	params := requestParams(c)
	result, err := h.enrollments.ListKrs(c.Request.Context(), enrollmentFilter(params), pageParams(params, h.paging))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Student KRS retrieved successfully", result.Items, pageMeta(c, result.Window, len(result.Items)))
}

// Khs godoc
// @Summary List students with their graded enrollments
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Student id or comma separated ids"
// @Param term_year_id query int false "Filter enrollments by term"
// @Param department_id query int false "Filter by department"
// @Param server_paging query bool false "Paginate on the server"
// @Param per_page query int false "Page size"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=[]models.StudentKhs,meta=pagination.Meta}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /student-khs [get]
func (h *EnrollmentHandler) Khs(c *gin.Context) {
	params := requestParams(c)
	result, err := h.enrollments.ListKhs(c.Request.Context(), enrollmentFilter(params), pageParams(params, h.paging))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "KHS fetched successfully", result.Items, pageMeta(c, result.Window, len(result.Items)))
}

func enrollmentFilter(params query.Params) models.EnrollmentFilter {
	return models.EnrollmentFilter{
		StudentIDs:   params.List("student_id"),
		TermYearID:   params.Get("term_year_id"),
		DepartmentID: params.Get("department_id"),
	}
}
