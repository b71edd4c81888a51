package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/server/http/dto"
)

// FilterFromQuery reads product and date filters. Missing, blank and placeholder values mean absent.
func FilterFromQuery(c *gin.Context) model.OrderFilter {
	return model.OrderFilter{
		Product: optionalQuery(c, "product", model.ProductPlaceholder),
		Date:    optionalQuery(c, "date", model.DatePlaceholder),
	}
}

func optionalQuery(c *gin.Context, key, placeholder string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	value := strings.TrimSpace(raw)
	if value == "" || value == placeholder {
		return nil
	}
	return &value
}

func respondError(c *gin.Context, err error) {
	var ve *domainErrors.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := dto.ErrorResponse{Error: ve.Err.Error(), Field: ve.Field}
		if ve.Item >= 0 {
			item := ve.Item
			resp.Item = &item
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
	case errors.Is(err, domainErrors.ErrAlreadyDelivered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domainErrors.ErrAlreadyDelivered.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
