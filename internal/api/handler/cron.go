package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CronJobTypeDashboard é o único job agendado do serviço
const CronJobTypeDashboard = "dashboard"

// CronJob é um agendador que aceita disparo manual
type CronJob interface {
	Refresher
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardRefreshService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeDashboard:
			if services.DashboardRefreshService == nil {
				writeInternalError(w, "Serviço de atualização do dashboard não disponível")
				return
			}
			services.DashboardRefreshService.TriggerManualRefresh()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardRefreshService != nil {
			status[CronJobTypeDashboard] = services.DashboardRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
