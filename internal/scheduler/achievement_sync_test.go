package scheduler

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// consolidatorSpy registra as chamadas de consolidação feitas pelos workers
type consolidatorSpy struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (c *consolidatorSpy) ConsolidateMonth(salesPerson string, year, month int) (*domain.MonthlyAchievementEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	c.calls = append(c.calls, salesPerson)
	return &domain.MonthlyAchievementEntry{
		SalesPerson:    salesPerson,
		Year:           year,
		Month:          month,
		AchievedAmount: 1000,
		OrdersCount:    1,
	}, nil
}

func TestAchievementSyncService_processMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	spy := &consolidatorSpy{}

	service := &AchievementSyncService{
		config:       AchievementSyncConfig{MaxConcurrentJobs: 2},
		orderRepo:    mockOrderRepo,
		consolidator: spy,
	}

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	mockOrderRepo.EXPECT().
		ListSalesPeopleByPeriod(start, end).
		Return([]string{"Ana", "Bruno", "Clara"}, nil)

	service.processMonth(2025, 5)

	sort.Strings(spy.calls)
	assert.Equal(t, []string{"Ana", "Bruno", "Clara"}, spy.calls)
}

func TestAchievementSyncService_processMonth_SemVendedores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	spy := &consolidatorSpy{}

	service := &AchievementSyncService{
		config:       AchievementSyncConfig{MaxConcurrentJobs: 2},
		orderRepo:    mockOrderRepo,
		consolidator: spy,
	}

	mockOrderRepo.EXPECT().
		ListSalesPeopleByPeriod(gomock.Any(), gomock.Any()).
		Return([]string{}, nil)

	service.processMonth(2025, 5)

	assert.Empty(t, spy.calls)
}

func TestAchievementSyncService_syncAchievements_AtualizaStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	mockOrderRepo.EXPECT().
		ListSalesPeopleByPeriod(gomock.Any(), gomock.Any()).
		Return([]string{}, nil)

	service := &AchievementSyncService{
		config:       AchievementSyncConfig{MaxConcurrentJobs: 1, MonthLookBack: 1},
		orderRepo:    mockOrderRepo,
		consolidator: &consolidatorSpy{},
	}

	// Leituras de status concorrentes à consolidação em andamento
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			service.GetStatus()
		}
	}()

	service.syncAchievements()
	<-done

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestAchievementSyncService_GetStatus(t *testing.T) {
	service := &AchievementSyncService{
		config: AchievementSyncConfig{
			CronSchedule:  "0 2 * * *",
			SyncEnabled:   true,
			MonthLookBack: 2,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 2, status["month_lookback"])
}
