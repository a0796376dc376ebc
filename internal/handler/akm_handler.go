package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/export"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
	"github.com/noah-isme/simak-api/pkg/response"
)

type akmService interface {
	List(ctx context.Context, filter models.AkmFilter, p pagination.Params) (*dto.ListResult[models.StudentAkm], error)
	Export(ctx context.Context, filter models.AkmFilter, format string) (*export.Document, error)
}

// AkmHandler serves academic performance summaries.
type AkmHandler struct {
	akm    akmService
	paging config.PaginationConfig
}

// NewAkmHandler constructs AkmHandler.
func NewAkmHandler(akm akmService, paging config.PaginationConfig) *AkmHandler {
	return &AkmHandler{akm: akm, paging: paging}
}

// List godoc
// @Summary List per-term academic performance
// @Tags AKM
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Filter by student"
// @Param nim query string false "Filter by NIM"
// @Param department_id query int false "Filter by department"
// @Param entry_year query int false "Filter by entry year"
// @Param server_paging query bool false "Paginate on the server"
// @Param per_page query int false "Page size"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=[]models.StudentAkm,meta=pagination.Meta}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /akm [get]
func (h *AkmHandler) List(c *gin.Context) {
	params := requestParams(c)
	result, err := h.akm.List(c.Request.Context(), akmFilter(params), pageParams(params, h.paging))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "AKM fetched successfully", result.Items, pageMeta(c, result.Window, len(result.Items)))
}

// Export godoc
// @Summary Download per-term academic performance
// @Tags AKM
// @Produce text/csv,application/pdf
// @Security BearerAuth
// @Param student_id query int false "Filter by student"
// @Param nim query string false "Filter by NIM"
// @Param department_id query int false "Filter by department"
// @Param entry_year query int false "Filter by entry year"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /akm/export [get]
func (h *AkmHandler) Export(c *gin.Context) {
	params := requestParams(c)
	doc, err := h.akm.Export(c.Request.Context(), akmFilter(params), params.Get("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

func akmFilter(params query.Params) models.AkmFilter {
	return models.AkmFilter{
		StudentID:    params.Get("student_id"),
		Nim:          params.Get("nim"),
		DepartmentID: params.Get("department_id"),
		EntryYear:    params.Get("entry_year"),
	}
}
