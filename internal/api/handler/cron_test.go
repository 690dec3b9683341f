package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/internal/api/handler"
	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

func TestRunCronJob(t *testing.T) {
	rt := router.New(
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{})...),
	)

	t.Run("Tipo de cron inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/bogus/run", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("Serviço indisponível", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/achievements/run", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{})...),
	)

	t.Run("Serviço indisponível responde erro em vez de panicar", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	})
}
