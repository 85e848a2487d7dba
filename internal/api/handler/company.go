package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/companying"
	"github.com/gravora/metrics-api/pkg/apiErrors"
	"github.com/gravora/metrics-api/pkg/middleware"
)

// CreateCompanyRequest é o corpo da criação de empresas
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// BusinessContextRequest é o corpo do contexto de negócio da empresa
type BusinessContextRequest struct {
	Industry      *string             `json:"industry"`
	BusinessModel *string             `json:"business_model"`
	Goals         []string            `json:"goals"`
	Mapping       domain.EventMapping `json:"mapping"`
}

// CreateCompany cria uma empresa vinculada ao usuário autenticado
func CreateCompany(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		company, err := service.Create(userClaims.UserID, req.Name)
		if err != nil {
			if errors.Is(err, companying.ErrEmptyName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O nome da empresa é obrigatório", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar empresa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logrus.Error(err)
		}
	}
}

// ListCompanies lista as empresas do usuário autenticado
func ListCompanies(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companies, err := service.List(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(companies); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCompany retorna uma empresa do usuário por ID
func GetCompany(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		company, err := service.Get(userClaims.UserID, companyID)
		if err != nil {
			writeCompanyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logrus.Error(err)
		}
	}
}

// ActivateCompany ativa a empresa, liberando o restante do onboarding
func ActivateCompany(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		if err := service.Activate(userClaims.UserID, companyID); err != nil {
			writeCompanyError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SaveBusinessContext grava o contexto de negócio da empresa, substituindo o
// anterior por inteiro
func SaveBusinessContext(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		var req BusinessContextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		context := &domain.BusinessContext{
			CompanyID:     companyID,
			Industry:      req.Industry,
			BusinessModel: req.BusinessModel,
			Goals:         req.Goals,
			Mapping:       req.Mapping,
		}

		if err := service.SaveContext(userClaims.UserID, context); err != nil {
			writeCompanyError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetBusinessContext retorna o contexto de negócio da empresa
func GetBusinessContext(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		context, err := service.GetContext(userClaims.UserID, companyID)
		if err != nil {
			writeCompanyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(context); err != nil {
			logrus.Error(err)
		}
	}
}

// SaveSaleMapping grava o mapeamento de eventos de venda da empresa sem
// tocar nos demais campos do contexto
func SaveSaleMapping(service companying.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		var mapping domain.EventMapping
		if err := json.NewDecoder(r.Body).Decode(&mapping); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SaveMapping(userClaims.UserID, companyID, mapping); err != nil {
			writeCompanyError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeCompanyError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	if errors.Is(err, companying.ErrCompanyNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Empresa não encontrada", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar empresa", nil)
}
