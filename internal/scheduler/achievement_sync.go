package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/calendaring"
)

// MonthConsolidator recalcula e grava o consolidado de vendas de um mês
type MonthConsolidator interface {
	ConsolidateMonth(salesPerson string, year, month int) (*domain.MonthlyAchievementEntry, error)
}

// AchievementSyncConfig representa a configuração do agendador de consolidação
type AchievementSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// AchievementSyncService gerencia o agendamento da consolidação noturna dos
// totais de vendas de meses fechados.
type AchievementSyncService struct {
	scheduler           *gocron.Scheduler
	config              AchievementSyncConfig
	orderRepo           repository.SalesOrderRepository
	consolidator        MonthConsolidator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAchievementSyncService cria uma nova instância do serviço de consolidação
func NewAchievementSyncService(
	orderRepo repository.SalesOrderRepository,
	consolidator MonthConsolidator,
	appConfig *config.Config,
) *AchievementSyncService {
	syncConfig := AchievementSyncConfig{
		CronSchedule:      appConfig.AchievementSync.CronSchedule,
		MaxConcurrentJobs: appConfig.AchievementSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AchievementSync.Enabled,
		MonthLookBack:     appConfig.AchievementSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de consolidação de vendas carregada")

	return &AchievementSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		orderRepo:    orderRepo,
		consolidator: consolidator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *AchievementSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAchievements()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAchievements consolida os últimos meses fechados de todos os vendedores
// com pedidos no período
func (s *AchievementSyncService) syncAchievements() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de vendas já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando consolidação de vendas dos meses fechados")

	for i := 1; i <= s.config.MonthLookBack; i++ {
		month := time.Now().AddDate(0, -i, 0)
		s.processMonth(month.Year(), int(month.Month()))
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Consolidação de vendas concluída")
}

// processMonth consolida um mês para todos os vendedores com pedidos nele
func (s *AchievementSyncService) processMonth(year, month int) {
	start, end, err := calendaring.MonthBounds(year, month, time.Local)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular os limites do mês para consolidação")
		return
	}

	salesPeople, err := s.orderRepo.ListSalesPeopleByPeriod(start, end)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"year":  year,
			"month": month,
		}).Error("Erro ao listar vendedores do período para consolidação")
		return
	}

	if len(salesPeople) == 0 {
		logrus.WithFields(logrus.Fields{
			"year":  year,
			"month": month,
		}).Info("Nenhum vendedor com pedidos no período, nada a consolidar")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, salesPerson := range salesPeople {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(sp string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			entry, err := s.consolidator.ConsolidateMonth(sp, year, month)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"sales_person": sp,
					"year":         year,
					"month":        month,
				}).Error("Erro ao consolidar vendas do vendedor")
				return
			}

			logrus.WithFields(logrus.Fields{
				"sales_person":    sp,
				"year":            year,
				"month":           month,
				"achieved_amount": entry.AchievedAmount,
				"orders_count":    entry.OrdersCount,
			}).Info("Consolidação do vendedor concluída")
		}(salesPerson)
	}

	wg.Wait()
}

// TriggerManualSync dispara uma consolidação fora do agendamento
func (s *AchievementSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de vendas")
	go s.syncAchievements()
}

// GetStatus retorna o status atual da consolidação
func (s *AchievementSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
