package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DashboardReader expõe o estado atual do dashboard
type DashboardReader interface {
	State() dashboard.State
}

// Refresher dispara uma nova ativação do dashboard
type Refresher interface {
	TriggerManualRefresh()
}

// GetDashboard devolve o painel renderizado. Em erro, o painel vai em details.
func GetDashboard(reader DashboardReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := reader.State()
		panel := dashboard.Render(state)

		if state.Status == dashboard.StatusError {
			apiErr := apiErrors.FromDomainError(state.Err)
			log.ForContext(r.Context()).WithFields(log.Fields{
				"status": panel.Status,
				"error":  apiErr.Message,
			}).Warn("Dashboard em estado de erro")
			apiErrors.WriteError(w, apiErr.Code, panel.Message, panel)
			return
		}

		writeJSON(w, http.StatusOK, panel)
	})
}

// RefreshDashboard reativa o dashboard; a busca acontece em segundo plano
func RefreshDashboard(refresher Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshDashboard")

		refresher.TriggerManualRefresh()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização do dashboard iniciada",
			"status":  dashboard.StatusLoading,
		})
	})
}
