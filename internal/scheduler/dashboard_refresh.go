package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// Activator é o dashboard que volta a buscar as vendas a cada ativação
type Activator interface {
	Activate(ctx context.Context)
}

// DashboardRefreshConfig representa a configuração do agendador de atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService reativa o dashboard de vendas em uma expressão cron
// ou sob demanda. Cada disparo é uma nova ativação com uma única busca.
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	activator Activator

	mu                sync.Mutex
	baseCtx           context.Context
	started           bool
	runs              int
	lastRefreshAt     time.Time
	lastRefreshSource string
}

// NewDashboardRefreshService cria o agendador; nada é agendado antes de Start
func NewDashboardRefreshService(activator Activator, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		activator: activator,
		baseCtx:   context.Background(),
	}
}

// Start guarda ctx como contexto das ativações e, se habilitado, agenda a atualização
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	if !s.config.Enabled {
		logrus.Info("Atualização agendada do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh("cron")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) refresh(source string) {
	s.mu.Lock()
	ctx := s.baseCtx
	s.runs++
	s.lastRefreshAt = time.Now()
	s.lastRefreshSource = source
	s.mu.Unlock()

	if ctx.Err() != nil {
		logrus.WithField("source", source).Warn("Atualização do dashboard ignorada: aplicação encerrando")
		return
	}

	logrus.WithField("source", source).Info("Reativando dashboard de vendas")
	s.activator.Activate(ctx)
}

// TriggerManualRefresh reativa o dashboard imediatamente
func (s *DashboardRefreshService) TriggerManualRefresh() {
	logrus.Info("Iniciando atualização manual do dashboard")
	s.refresh("manual")
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"refresh_enabled":     s.config.Enabled,
		"refresh_cron":        s.config.CronSchedule,
		"scheduler_running":   s.started && s.scheduler.IsRunning(),
		"refresh_runs":        s.runs,
		"last_refresh_at":     s.lastRefreshAt,
		"last_refresh_source": s.lastRefreshSource,
	}

	if s.started {
		_, next := s.scheduler.NextRun()
		status["next_refresh_at"] = next
	}

	return status
}
