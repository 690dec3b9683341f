package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func assignmentPtr(t domain.AssignmentType) *domain.AssignmentType {
	return &t
}

func stringPtr(s string) *string {
	return &s
}

func TestService_SetTarget_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório deve acontecer em entrada inválida
	mockRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name    string
		params  SetTargetParams
		wantErr error
	}{
		{
			name:    "Vendedor ausente",
			params:  SetTargetParams{SalesPerson: "", Year: 2025, Month: 6, TargetAmount: 1000},
			wantErr: ErrSalesPersonRequired,
		},
		{
			name:    "Vendedor apenas com espaços",
			params:  SetTargetParams{SalesPerson: "   ", Year: 2025, Month: 6, TargetAmount: 1000},
			wantErr: ErrSalesPersonRequired,
		},
		{
			name:    "Mês zero",
			params:  SetTargetParams{SalesPerson: "Ana", Year: 2025, Month: 0, TargetAmount: 1000},
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "Mês treze",
			params:  SetTargetParams{SalesPerson: "Ana", Year: 2025, Month: 13, TargetAmount: 1000},
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "Ano inválido",
			params:  SetTargetParams{SalesPerson: "Ana", Year: 0, Month: 6, TargetAmount: 1000},
			wantErr: ErrInvalidYear,
		},
		{
			name:    "Valor negativo",
			params:  SetTargetParams{SalesPerson: "Ana", Year: 2025, Month: 6, TargetAmount: -1},
			wantErr: ErrNegativeTargetAmount,
		},
		{
			name: "Tipo de atribuição desconhecido",
			params: SetTargetParams{
				SalesPerson:    "Ana",
				Year:           2025,
				Month:          6,
				TargetAmount:   1000,
				AssignmentType: assignmentPtr(domain.AssignmentType("automatic")),
			},
			wantErr: ErrInvalidAssignmentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := service.SetTarget(tt.params)
			assert.Nil(t, target)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_SetTarget_DelegaUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewService(mockRepo)

	stored := &domain.SalesTarget{
		ID:             1,
		SalesPerson:    "Ana",
		Year:           2025,
		Month:          6,
		TargetAmount:   100000,
		AssignmentType: domain.AssignmentManual,
		AssignedBy:     "admin",
	}

	mockRepo.EXPECT().
		Upsert(repository.TargetUpsert{
			SalesPerson:  "Ana",
			Year:         2025,
			Month:        6,
			TargetAmount: 100000,
			AssignedBy:   stringPtr("admin"),
		}).
		Return(stored, nil)

	target, err := service.SetTarget(SetTargetParams{
		SalesPerson:  " Ana ", // espaços devem ser normalizados antes da escrita
		Year:         2025,
		Month:        6,
		TargetAmount: 100000,
		AssignedBy:   stringPtr("admin"),
	})

	assert.NoError(t, err)
	assert.Equal(t, stored, target)
}

func TestService_SetTarget_FalhaDeArmazenamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(nil, assert.AnError)

	target, err := service.SetTarget(SetTargetParams{
		SalesPerson:  "Ana",
		Year:         2025,
		Month:        6,
		TargetAmount: 100000,
	})

	assert.Nil(t, target)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, IsValidationError(err))
}

func TestService_GetTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Meta existente", func(t *testing.T) {
		stored := &domain.SalesTarget{SalesPerson: "Ana", Year: 2025, Month: 6, TargetAmount: 50000}

		mockRepo.EXPECT().
			GetByKey("Ana", 2025, 6).
			Return(stored, nil)

		target, err := service.GetTarget("Ana", 2025, 6)
		assert.NoError(t, err)
		assert.Equal(t, stored, target)
	})

	t.Run("Meta ausente não é erro", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByKey("Ana", 2025, 7).
			Return(nil, nil)

		target, err := service.GetTarget("Ana", 2025, 7)
		assert.NoError(t, err)
		assert.Nil(t, target)
	})

	t.Run("Mês inválido rejeitado antes do acesso ao banco", func(t *testing.T) {
		_, err := service.GetTarget("Ana", 2025, 13)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("Falha de armazenamento é propagada", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByKey("Ana", 2025, 6).
			Return(nil, assert.AnError)

		_, err := service.GetTarget("Ana", 2025, 6)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestService_ListTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Lista ordenada por mês", func(t *testing.T) {
		stored := []*domain.SalesTarget{
			{SalesPerson: "Ana", Year: 2025, Month: 1, TargetAmount: 10000},
			{SalesPerson: "Ana", Year: 2025, Month: 2, TargetAmount: 20000},
		}

		mockRepo.EXPECT().
			ListByYear("Ana", 2025).
			Return(stored, nil)

		targets, err := service.ListTargets("Ana", 2025)
		assert.NoError(t, err)
		assert.Equal(t, stored, targets)
	})

	t.Run("Ano sem metas retorna lista vazia", func(t *testing.T) {
		mockRepo.EXPECT().
			ListByYear("Ana", 2030).
			Return([]*domain.SalesTarget{}, nil)

		targets, err := service.ListTargets("Ana", 2030)
		assert.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("Vendedor obrigatório", func(t *testing.T) {
		_, err := service.ListTargets("", 2025)
		assert.ErrorIs(t, err, ErrSalesPersonRequired)
	})
}
