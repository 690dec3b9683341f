package calendaring

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// ErrInvalidPeriod indica um mês fora do intervalo 1-12.
var ErrInvalidPeriod = errors.New("período inválido")

// DaysInMonth retorna o total de dias do mês informado, considerando
// anos bissextos em fevereiro.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: mês %d fora do intervalo 1-12", ErrInvalidPeriod, month)
	}

	// O dia zero do mês seguinte é o último dia do mês solicitado
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// WindowMetrics calcula a janela de dias do período (year, month) avaliada
// contra o instante "now" recebido como parâmetro. A função é pura: não lê
// relógio global, o chamador define o que é "agora".
func WindowMetrics(year, month int, now time.Time) (domain.DaysMetrics, error) {
	total, err := DaysInMonth(year, month)
	if err != nil {
		return domain.DaysMetrics{}, err
	}

	metrics := domain.DaysMetrics{DaysInMonth: total}

	nowYear, nowMonth := now.Year(), int(now.Month())

	switch {
	case year == nowYear && month == nowMonth:
		// O dia corrente conta como decorrido
		metrics.IsCurrentMonth = true
		metrics.DaysElapsed = now.Day()
		metrics.DaysRemaining = total - now.Day()

	case year < nowYear || (year == nowYear && month < nowMonth):
		// Período encerrado
		metrics.DaysElapsed = total
		metrics.DaysRemaining = 0

	default:
		// Período ainda não iniciado
		metrics.DaysElapsed = 0
		metrics.DaysRemaining = total
	}

	return metrics, nil
}

// MonthBounds retorna o primeiro instante do mês e o primeiro instante do mês
// seguinte no fuso informado. O intervalo [início, fim) cobre o mês inteiro.
func MonthBounds(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: mês %d fora do intervalo 1-12", ErrInvalidPeriod, month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}
