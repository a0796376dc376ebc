package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context, filter models.StudentFilter, p pagination.Params) (interface{}, pagination.Window, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
	paging   config.PaginationConfig
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, paging config.PaginationConfig) *StudentHandler {
	return &StudentHandler{students: students, paging: paging}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Student id or comma separated ids"
// @Param nim query string false "Filter by NIM"
// @Param register_number query string false "Filter by registration number"
// @Param department_id query int false "Filter by department"
// @Param entry_year query int false "Filter by entry year"
// @Param detail query bool false "Include personal fields"
// @Param server_paging query bool false "Paginate on the server"
// @Param per_page query int false "Page size"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=[]models.Student,meta=pagination.Meta}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	params := requestParams(c)
	filter := models.StudentFilter{
		StudentIDs:     params.List("student_id"),
		Nim:            params.Get("nim"),
		RegisterNumber: params.Get("register_number"),
		DepartmentID:   params.Get("department_id"),
		EntryYear:      params.Get("entry_year"),
		Detail:         pagination.Truthy(params.Get("detail")),
	}

	data, window, err := h.students.List(c.Request.Context(), filter, pageParams(params, h.paging))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Student list retrieved successfully", data, pageMeta(c, window, studentCount(data)))
}

func studentCount(data interface{}) int {
	switch rows := data.(type) {
	case []models.Student:
		return len(rows)
	case []models.StudentDetail:
		return len(rows)
	default:
		return 0
	}
}
