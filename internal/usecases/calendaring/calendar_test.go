package calendaring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		expected int
	}{
		{name: "Janeiro tem 31 dias", year: 2024, month: 1, expected: 31},
		{name: "Abril tem 30 dias", year: 2024, month: 4, expected: 30},
		{name: "Fevereiro em ano bissexto tem 29 dias", year: 2024, month: 2, expected: 29},
		{name: "Fevereiro em ano comum tem 28 dias", year: 2025, month: 2, expected: 28},
		{name: "Fevereiro em ano secular não bissexto", year: 1900, month: 2, expected: 28},
		{name: "Fevereiro em ano secular bissexto", year: 2000, month: 2, expected: 29},
		{name: "Dezembro tem 31 dias", year: 2025, month: 12, expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysInMonth(tt.year, tt.month)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestDaysInMonth_MesInvalido(t *testing.T) {
	for _, month := range []int{0, 13, -1, 100} {
		_, err := DaysInMonth(2025, month)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	}
}

func TestWindowMetrics(t *testing.T) {
	// Data de referência: 15 de junho de 2025
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name              string
		year              int
		month             int
		wantDaysInMonth   int
		wantDaysElapsed   int
		wantDaysRemaining int
		wantCurrent       bool
	}{
		{
			name:              "Mês corrente - dia atual conta como decorrido",
			year:              2025,
			month:             6,
			wantDaysInMonth:   30,
			wantDaysElapsed:   15,
			wantDaysRemaining: 15,
			wantCurrent:       true,
		},
		{
			name:              "Mês passado do mesmo ano - totalmente decorrido",
			year:              2025,
			month:             5,
			wantDaysInMonth:   31,
			wantDaysElapsed:   31,
			wantDaysRemaining: 0,
		},
		{
			name:              "Ano anterior - totalmente decorrido",
			year:              2024,
			month:             12,
			wantDaysInMonth:   31,
			wantDaysElapsed:   31,
			wantDaysRemaining: 0,
		},
		{
			name:              "Mês futuro do mesmo ano - ainda não iniciado",
			year:              2025,
			month:             7,
			wantDaysInMonth:   31,
			wantDaysElapsed:   0,
			wantDaysRemaining: 31,
		},
		{
			name:              "Ano futuro - ainda não iniciado",
			year:              2026,
			month:             1,
			wantDaysInMonth:   31,
			wantDaysElapsed:   0,
			wantDaysRemaining: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := WindowMetrics(tt.year, tt.month, now)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDaysInMonth, metrics.DaysInMonth)
			assert.Equal(t, tt.wantDaysElapsed, metrics.DaysElapsed)
			assert.Equal(t, tt.wantDaysRemaining, metrics.DaysRemaining)
			assert.Equal(t, tt.wantCurrent, metrics.IsCurrentMonth)

			// Invariante: decorridos + restantes = total de dias do mês
			assert.Equal(t, metrics.DaysInMonth, metrics.DaysElapsed+metrics.DaysRemaining)
		})
	}
}

func TestWindowMetrics_PrimeiroEUltimoDia(t *testing.T) {
	firstDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	metrics, err := WindowMetrics(2025, 6, firstDay)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.DaysElapsed)
	assert.Equal(t, 29, metrics.DaysRemaining)

	lastDay := time.Date(2025, 6, 30, 23, 59, 59, 0, time.Local)
	metrics, err = WindowMetrics(2025, 6, lastDay)
	assert.NoError(t, err)
	assert.Equal(t, 30, metrics.DaysElapsed)
	assert.Equal(t, 0, metrics.DaysRemaining)
}

func TestWindowMetrics_MesInvalido(t *testing.T) {
	_, err := WindowMetrics(2025, 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = WindowMetrics(2025, 13, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds(2024, 2, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// Virada de ano
	start, end, err = MonthBounds(2024, 12, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = MonthBounds(2024, 13, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
