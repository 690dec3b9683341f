package dashboarding

import (
	"time"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// TargetReader define a leitura de metas usada pela montagem do dashboard
type TargetReader interface {
	// GetTarget busca a meta pela chave exata; (nil, nil) quando não existe
	GetTarget(salesPerson string, year, month int) (*domain.SalesTarget, error)
}

// SalesAchiever define a agregação de vendas usada pela montagem do dashboard
type SalesAchiever interface {
	// GetAchievedSales soma os pedidos não cancelados do vendedor no mês
	GetAchievedSales(salesPerson string, year, month int, now time.Time) (float64, error)
}

// Dashboarder monta o snapshot de meta versus realizado de um vendedor
type Dashboarder interface {
	// GetDashboard produz um snapshot novo para (salesPerson, year, month)
	GetDashboard(salesPerson string, year, month int, now time.Time) (*domain.DashboardSnapshot, error)

	// GetPerformance produz o resumo compacto de desempenho do mês
	GetPerformance(salesPerson string, year, month int, now time.Time) (*domain.PerformanceReport, error)
}
