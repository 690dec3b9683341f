package dashboarding

import (
	"time"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/calendaring"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// Service compõe meta, realizado e janela de calendário em um snapshot.
// Apenas leitura: a única escrita de todo o núcleo é o set-target do
// serviço de metas.
type Service struct {
	targetReader TargetReader
	achiever     SalesAchiever
}

func NewService(targetReader TargetReader, achiever SalesAchiever) Dashboarder {
	return &Service{
		targetReader: targetReader,
		achiever:     achiever,
	}
}

// GetDashboard monta o snapshot do período. As três leituras (meta,
// realizado, calendário) são independentes entre si; somente a composição
// final depende das três. Ausência de meta produz StatusNoTarget, nunca é
// tratada como meta de valor zero.
func (s *Service) GetDashboard(salesPerson string, year, month int, now time.Time) (*domain.DashboardSnapshot, error) {
	target, err := s.targetReader.GetTarget(salesPerson, year, month)
	if err != nil {
		return nil, err
	}

	achieved, err := s.achiever.GetAchievedSales(salesPerson, year, month, now)
	if err != nil {
		return nil, err
	}

	days, err := calendaring.WindowMetrics(year, month, now)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.DashboardSnapshot{
		SalesPerson: salesPerson,
		Year:        year,
		Month:       month,
		HasTarget:   target != nil,
		Target:      target,
		Days:        days,
		GeneratedAt: now,
	}

	snapshot.Achieved.Amount = achieved

	if target != nil {
		// Não truncado: pode passar de 100 quando a meta foi superada
		achievedPct := utils.Percentage(achieved, target.TargetAmount)

		remaining := target.TargetAmount - achieved
		if remaining < 0 {
			remaining = 0
		}

		remainingPct := utils.RoundWithTwoDecimalPlace(100 - achievedPct)
		if remainingPct < 0 {
			remainingPct = 0
		}

		exceeded := achieved - target.TargetAmount
		if exceeded < 0 {
			exceeded = 0
		}

		snapshot.Achieved.Percentage = achievedPct
		snapshot.Remaining = domain.AmountProgress{Amount: remaining, Percentage: remainingPct}
		snapshot.Exceeded = exceeded
		snapshot.Status = domain.ClassifyTargetStatus(achievedPct)
	} else {
		snapshot.Status = domain.StatusNoTarget
	}

	snapshot.DailyAverage = dailyAverage(snapshot.Achieved.Amount, snapshot.Remaining.Amount, days)

	return snapshot, nil
}

// GetPerformance monta o resumo compacto usado pela tela de desempenho
func (s *Service) GetPerformance(salesPerson string, year, month int, now time.Time) (*domain.PerformanceReport, error) {
	target, err := s.targetReader.GetTarget(salesPerson, year, month)
	if err != nil {
		return nil, err
	}

	achieved, err := s.achiever.GetAchievedSales(salesPerson, year, month, now)
	if err != nil {
		return nil, err
	}

	report := &domain.PerformanceReport{
		SalesPerson:   salesPerson,
		Year:          year,
		Month:         month,
		AchievedSales: utils.RoundWithTwoDecimalPlace(achieved),
		Target:        target,
	}

	if target != nil {
		report.AchievedPercentage = utils.Percentage(achieved, target.TargetAmount)
	}

	return report, nil
}

// dailyAverage calcula o ritmo diário alcançado e necessário, protegendo as
// divisões quando não há dias decorridos ou restantes no período.
func dailyAverage(achieved, remaining float64, days domain.DaysMetrics) domain.DailyAverage {
	avg := domain.DailyAverage{}

	if days.DaysElapsed > 0 {
		avg.Achieved = utils.RoundWithTwoDecimalPlace(achieved / float64(days.DaysElapsed))
	}

	if days.DaysRemaining > 0 {
		avg.Needed = utils.RoundWithTwoDecimalPlace(remaining / float64(days.DaysRemaining))
	}

	avg.OnTrack = avg.Achieved >= avg.Needed
	return avg
}
