package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/manualinput"
	"github.com/gravora/metrics-api/pkg/apiErrors"
	"github.com/gravora/metrics-api/pkg/middleware"
)

// SnapshotResponse agrega tudo que o dashboard precisa para renderizar a
// visão da empresa: o snapshot, os agregados por canal e a série diária
type SnapshotResponse struct {
	Snapshot       *domain.Snapshot          `json:"snapshot"`
	Channels       []domain.ChannelAggregate `json:"channels"`
	DailyMetrics   []domain.DailyMetric      `json:"daily_metrics"`
	CurrencySymbol string                    `json:"currency_symbol"`
}

// GetCompanySnapshot retorna o snapshot vigente da empresa com o símbolo da
// moeda resolvido para exibição
func GetCompanySnapshot(service manualinput.Submitter) http.HandlerFunc {
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

		stored, err := service.Load(userClaims.UserID, companyID)
		if err != nil {
			writeManualInputError(w, err)
			return
		}

		resp := SnapshotResponse{
			Snapshot:     stored.Snapshot,
			Channels:     stored.Channels,
			DailyMetrics: stored.DailyMetrics,
		}
		if stored.Snapshot != nil {
			resp.CurrencySymbol = domain.CurrencySymbol(stored.Snapshot.Currency)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.Error(err)
		}
	}
}
