package achieving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/calendaring"
	"go.uber.org/mock/gomock"
)

func TestService_GetAchievedSales_MesCorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)

	// Mês corrente sempre soma direto do ledger, nunca do consolidado
	mockOrderRepo.EXPECT().
		SumAmountByPeriod("Ana", start, end).
		Return(75000.0, 12, nil)

	total, err := service.GetAchievedSales("Ana", 2025, 6, now)
	assert.NoError(t, err)
	assert.Equal(t, 75000.0, total)
}

func TestService_GetAchievedSales_SemPedidosRetornaZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	mockOrderRepo.EXPECT().
		SumAmountByPeriod("Bruno", gomock.Any(), gomock.Any()).
		Return(0.0, 0, nil)

	total, err := service.GetAchievedSales("Bruno", 2025, 6, time.Now())
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestService_GetAchievedSales_MesFechadoUsaConsolidado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	mockAchievementRepo := mocks.NewMockMonthlyAchievementRepository(ctrl)
	service := NewService(mockOrderRepo).WithCache(mockAchievementRepo)

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	mockAchievementRepo.EXPECT().
		GetByKey("Ana", 2025, 4).
		Return(&domain.MonthlyAchievementEntry{
			SalesPerson:    "Ana",
			Year:           2025,
			Month:          4,
			AchievedAmount: 42000,
			OrdersCount:    7,
		}, nil)

	total, err := service.GetAchievedSales("Ana", 2025, 4, now)
	assert.NoError(t, err)
	assert.Equal(t, 42000.0, total)
}

func TestService_GetAchievedSales_ConsolidadoAusenteCaiParaLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	mockAchievementRepo := mocks.NewMockMonthlyAchievementRepository(ctrl)
	service := NewService(mockOrderRepo).WithCache(mockAchievementRepo)

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	mockAchievementRepo.EXPECT().
		GetByKey("Ana", 2025, 4).
		Return(nil, nil)

	mockOrderRepo.EXPECT().
		SumAmountByPeriod("Ana", gomock.Any(), gomock.Any()).
		Return(42000.0, 7, nil)

	total, err := service.GetAchievedSales("Ana", 2025, 4, now)
	assert.NoError(t, err)
	assert.Equal(t, 42000.0, total)
}

func TestService_GetAchievedSales_FalhaDoLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	mockOrderRepo.EXPECT().
		SumAmountByPeriod("Ana", gomock.Any(), gomock.Any()).
		Return(0.0, 0, assert.AnError)

	// Falha de acesso nunca vira total zero silencioso
	_, err := service.GetAchievedSales("Ana", 2025, 6, time.Now())
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestService_GetAchievedSales_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	_, err := service.GetAchievedSales("", 2025, 6, time.Now())
	assert.ErrorIs(t, err, ErrSalesPersonRequired)

	_, err = service.GetAchievedSales("Ana", 2025, 0, time.Now())
	assert.ErrorIs(t, err, calendaring.ErrInvalidPeriod)
}

func TestService_ConsolidateMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockSalesOrderRepository(ctrl)
	mockAchievementRepo := mocks.NewMockMonthlyAchievementRepository(ctrl)
	service := NewService(mockOrderRepo).WithCache(mockAchievementRepo)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	mockOrderRepo.EXPECT().
		SumAmountByPeriod("Ana", start, end).
		Return(58000.0, 9, nil)

	mockAchievementRepo.EXPECT().
		SaveOrUpdate(&domain.MonthlyAchievementEntry{
			SalesPerson:    "Ana",
			Year:           2025,
			Month:          5,
			AchievedAmount: 58000,
			OrdersCount:    9,
		}).
		Return(nil)

	entry, err := service.ConsolidateMonth("Ana", 2025, 5)
	assert.NoError(t, err)
	assert.Equal(t, 58000.0, entry.AchievedAmount)
	assert.Equal(t, 9, entry.OrdersCount)
}
