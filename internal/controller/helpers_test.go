package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"qrcode_admin_v1/internal/service"
	"qrcode_admin_v1/pkg/shopify"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"single", "7", []int64{7}, false},
		{"list with spaces", " 1, 2 ,3", []int64{1, 2, 3}, false},
		{"blank entries skipped", "1,,2,", []int64{1, 2}, false},
		{"empty", "", []int64{}, false},
		{"not a number", "1,x", nil, true},
		{"zero", "0", nil, true},
		{"negative", "-3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, ok := range map[string]bool{"12": true, "0": false, "abc": false, "-1": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		id, got := parseID(c)
		assert.Equal(t, ok, got, raw)
		if ok {
			assert.Equal(t, int64(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}

func TestRenderError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLogged bool
	}{
		{"validation", &service.ValidationError{Fields: map[string]string{"title": "Title is required"}}, http.StatusUnprocessableEntity, false},
		{"not found", service.ErrNotFound, http.StatusNotFound, false},
		{"no session", fmt.Errorf("load catalog: %w", service.ErrNoSession), http.StatusForbidden, false},
		{"upstream", fmt.Errorf("products: %w", shopify.ErrUpstream), http.StatusBadGateway, true},
		{"bad variant", fmt.Errorf("qr 3: %w", service.ErrInvalidReferenceFormat), http.StatusInternalServerError, true},
		{"other", errors.New("boom"), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			renderError(c, zap.New(core), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusUnprocessableEntity {
				assert.Equal(t, map[string]any{"title": "Title is required"}, body["errors"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
