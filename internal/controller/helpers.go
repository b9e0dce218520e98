package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qrcode_admin_v1/internal/service"
	"qrcode_admin_v1/pkg/shopify"
)

// parseID 解析路径参数 :id，失败时直接返回 400
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// parseIDs 解析 "1,2,3"，忽略空项
func parseIDs(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// renderError 业务错误 -> HTTP 状态码
func renderError(c *gin.Context, log *zap.Logger, err error) {
	if fields, ok := service.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}

	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusForbidden, gin.H{"error": "shop is not installed"})
	case errors.Is(err, shopify.ErrUpstream):
		log.Error("shopify request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products from Shopify"})
	case errors.Is(err, service.ErrInvalidReferenceFormat):
		log.Error("invalid qr code data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unrecognized product variant id"})
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
