package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/middleware"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
)

func requestParams(c *gin.Context) query.Params {
	return query.NewParams(c.Request.URL.Query())
}

func pageParams(params query.Params, cfg config.PaginationConfig) pagination.Params {
	return pagination.Parse(params.Folded(), cfg.DefaultPerPage, cfg.MaxPerPage)
}

// pageMeta builds the listing meta; count is the number of shaped items on this page.
func pageMeta(c *gin.Context, window pagination.Window, count int) pagination.Meta {
	return pagination.NewMeta(window, count, pagination.RequestPath(c.Request), c.Request.URL.Query())
}

func identityFromContext(c *gin.Context) *models.Identity {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return nil
	}
	return identity
}
