package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/manualinput"
	"github.com/gravora/metrics-api/internal/usecases/snapshotting"
	"github.com/gravora/metrics-api/pkg/apiErrors"
	"github.com/gravora/metrics-api/pkg/middleware"
)

// ManualInputRequest é o corpo das requisições de submissão e de validação
type ManualInputRequest struct {
	CompanyID string `json:"company_id"`
	snapshotting.SubmissionInput
}

// SubmitManualInput recebe uma submissão manual de métricas, valida, calcula
// o snapshot e persiste quando não há erro bloqueante
func SubmitManualInput(service manualinput.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ManualInputRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.CompanyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		result, err := service.Submit(userClaims.UserID, req.CompanyID, req.SubmissionInput)
		if err != nil {
			writeManualInputError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if !result.Accepted {
			w.WriteHeader(http.StatusBadRequest)
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

// ValidateManualInput executa a validação e o cálculo da submissão sem
// persistir nada, para pré-visualização no formulário
func ValidateManualInput(service manualinput.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ManualInputRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result := service.Validate(req.SubmissionInput)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

// GetManualInput retorna a última submissão aceita da empresa, com as linhas
// originais, os agregados por canal e o snapshot
func GetManualInput(service manualinput.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := r.URL.Query().Get("company_id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		stored, err := service.Load(userClaims.UserID, companyID)
		if err != nil {
			writeManualInputError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stored); err != nil {
			logrus.Error(err)
		}
	}
}

func writeManualInputError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, manualinput.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Empresa não encontrada", nil)
	case errors.Is(err, manualinput.ErrNoSubmission):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma submissão encontrada para a empresa", nil)
	case errors.Is(err, manualinput.ErrInvalidPeriod), errors.Is(err, manualinput.ErrInvalidGranularity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar submissão", nil)
	}
}
