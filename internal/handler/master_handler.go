package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/response"
)

type masterService interface {
	Departments(ctx context.Context, search string) ([]models.Department, error)
	ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error)
	Religions(ctx context.Context, search string) ([]models.Religion, error)
	MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error)
}

// MasterHandler serves reference data.
type MasterHandler struct {
	master masterService
}

// NewMasterHandler constructs MasterHandler.
func NewMasterHandler(master masterService) *MasterHandler {
	return &MasterHandler{master: master}
}

// Departments godoc
// @Summary List departments
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param search query string false "Partial department name"
// @Success 200 {object} response.Envelope{data=[]models.Department,meta=dto.MasterMeta}
// @Router /master/departments [get]
func (h *MasterHandler) Departments(c *gin.Context) {
	serveMaster(c, "mstr_department list retrieved successfully", h.master.Departments)
}

// ClassPrograms godoc
// @Summary List class programs
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param search query string false "Partial program name"
// @Success 200 {object} response.Envelope{data=[]models.ClassProgram,meta=dto.MasterMeta}
// @Router /master/program-classes [get]
func (h *MasterHandler) ClassPrograms(c *gin.Context) {
	serveMaster(c, "mstr_class_program list retrieved successfully", h.master.ClassPrograms)
}

// Religions godoc
// @Summary List religions
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param search query string false "Partial religion name"
// @Success 200 {object} response.Envelope{data=[]models.Religion,meta=dto.MasterMeta}
// @Router /master/religions [get]
func (h *MasterHandler) Religions(c *gin.Context) {
	serveMaster(c, "religion list retrieved successfully", h.master.Religions)
}

// MaritalStatuses godoc
// @Summary List marital statuses
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param search query string false "Partial status name"
// @Success 200 {object} response.Envelope{data=[]models.MaritalStatus,meta=dto.MasterMeta}
// @Router /master/marital-statuses [get]
func (h *MasterHandler) MaritalStatuses(c *gin.Context) {
	serveMaster(c, "marital_status list retrieved successfully", h.master.MaritalStatuses)
}

func serveMaster[T any](c *gin.Context, message string, load func(context.Context, string) ([]T, error)) {
	rows, err := load(c.Request.Context(), requestParams(c).Get("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, message, rows, dto.MasterMeta{TotalData: len(rows)})
}
