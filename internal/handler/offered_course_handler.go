package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/response"
)

type offeredCourseService interface {
	List(ctx context.Context, filter models.OfferedCourseFilter, p pagination.Params) ([]models.OfferedCourse, pagination.Window, error)
}

// OfferedCourseHandler lists the courses opened per term.
type OfferedCourseHandler struct {
	courses offeredCourseService
	paging  config.PaginationConfig
}

// NewOfferedCourseHandler constructs OfferedCourseHandler.
func NewOfferedCourseHandler(courses offeredCourseService, paging config.PaginationConfig) *OfferedCourseHandler {
	return &OfferedCourseHandler{courses: courses, paging: paging}
}

// List godoc
// @Summary List offered courses
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by department"
// @Param term_year_id query int false "Filter by term"
// @Param course_id query int false "Filter by course"
// @Param course_code query string false "Partial course code"
// @Param server_paging query bool false "Paginate on the server"
// @Param per_page query int false "Page size"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=[]models.OfferedCourse,meta=pagination.Meta}
// @Failure 422 {object} response.ErrorEnvelope
// @Router /offered-course [get]
func (h *OfferedCourseHandler) List(c *gin.Context) {
	params := requestParams(c)
	filter := models.OfferedCourseFilter{
		DepartmentID: params.Get("department_id"),
		TermYearID:   params.Get("term_year_id"),
		CourseID:     params.Get("course_id"),
		CourseCode:   params.Get("course_code"),
	}

	rows, window, err := h.courses.List(c.Request.Context(), filter, pageParams(params, h.paging))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Offered courses fetched successfully", rows, pageMeta(c, window, len(rows)))
}
