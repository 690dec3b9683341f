package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// setTargetRequest é o corpo aceito pelo POST /v1/targets
type setTargetRequest struct {
	SalesPerson    string   `json:"sales_person"`
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	TargetAmount   float64  `json:"target_amount"`
	AssignmentType *string  `json:"assignment_type,omitempty"`
	AssignedBy     *string  `json:"assigned_by,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// SetTarget cria ou atualiza a meta mensal de um vendedor
func SetTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req setTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("targets: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		params := targeting.SetTargetParams{
			SalesPerson:  req.SalesPerson,
			Year:         req.Year,
			Month:        req.Month,
			TargetAmount: req.TargetAmount,
			AssignedBy:   req.AssignedBy,
			Notes:        req.Notes,
		}

		if req.AssignmentType != nil {
			assignmentType := domain.AssignmentType(*req.AssignmentType)
			params.AssignmentType = &assignmentType
		}

		target, err := service.SetTarget(params)
		if err != nil {
			writeTargetError(w, logger, err, "targets: erro ao gravar meta")
			return
		}

		logger.WithFields(log.Fields{
			"sales_person": target.SalesPerson,
			"year":         target.Year,
			"month":        target.Month,
		}).Info("targets: meta gravada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logger.WithError(err).Error("targets: erro ao codificar resposta")
		}
	})
}

// targetResponse envelopa a meta junto com a flag de existência, para o
// cliente distinguir meta ausente de meta zerada
type targetResponse struct {
	HasTarget bool                `json:"has_target"`
	Target    *domain.SalesTarget `json:"target"`
}

// GetCurrentTarget retorna a meta do vendedor no mês corrente
func GetCurrentTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesPerson := r.URL.Query().Get("salesPerson")
		if salesPerson == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro salesPerson", nil)
			return
		}

		now := time.Now()
		target, err := service.GetTarget(salesPerson, now.Year(), int(now.Month()))
		if err != nil {
			writeTargetError(w, logger, err, "targets: erro ao buscar meta corrente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := targetResponse{HasTarget: target != nil, Target: target}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("targets: erro ao codificar resposta")
		}
	})
}

// ListTargets retorna as metas do vendedor no ano informado (padrão: ano corrente)
func ListTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesPerson := r.URL.Query().Get("salesPerson")
		if salesPerson == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro salesPerson", nil)
			return
		}

		year, err := utils.ParseYear(r.URL.Query().Get("year"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		targets, err := service.ListTargets(salesPerson, year)
		if err != nil {
			writeTargetError(w, logger, err, "targets: erro ao listar metas")
			return
		}

		if targets == nil {
			targets = []*domain.SalesTarget{}
		}

		response := map[string]any{
			"targets": targets,
			"count":   len(targets),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("targets: erro ao codificar resposta")
		}
	})
}

// writeTargetError converte erros do caso de uso de metas na resposta padronizada
func writeTargetError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	var targetErr *targeting.TargetError
	field := ""
	if errors.As(err, &targetErr) {
		field = targetErr.Field
	}

	if targeting.IsValidationError(err) {
		logger.WithError(err).WithField("field", field).Warn(logMsg)

		code := apiErrors.ErrInvalidRequest
		if errors.Is(err, targeting.ErrSalesPersonRequired) {
			code = apiErrors.ErrMissingRequiredData
		}

		var details any
		if field != "" {
			details = map[string]string{"field": field}
		}

		apiErrors.WriteError(w, code, err.Error(), details)
		return
	}

	logger.WithError(err).Error(logMsg)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível acessar o armazenamento de metas", nil)
}
