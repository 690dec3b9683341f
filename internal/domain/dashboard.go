package domain

import "time"

// TargetStatus classifica o progresso do vendedor em relação à meta.
// StatusNoTarget é um estado distinto: não existe meta cadastrada para o
// período, o que não é o mesmo que uma meta de valor zero.
type TargetStatus string

const (
	StatusOnTrack     TargetStatus = "on_track"
	StatusProgressing TargetStatus = "progressing"
	StatusAtRisk      TargetStatus = "at_risk"
	StatusNoTarget    TargetStatus = "no_target"
)

// ClassifyTargetStatus aplica os limiares de progresso na ordem definida:
// >= 100% on_track, >= 50% progressing, abaixo disso at_risk.
func ClassifyTargetStatus(achievedPercentage float64) TargetStatus {
	switch {
	case achievedPercentage >= 100:
		return StatusOnTrack
	case achievedPercentage >= 50:
		return StatusProgressing
	default:
		return StatusAtRisk
	}
}

// AmountProgress agrupa um valor monetário e o percentual correspondente.
type AmountProgress struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// DaysMetrics é a janela de calendário do período avaliada contra "agora".
type DaysMetrics struct {
	DaysInMonth    int  `json:"days_in_month"`
	DaysElapsed    int  `json:"days_elapsed"`
	DaysRemaining  int  `json:"days_remaining"`
	IsCurrentMonth bool `json:"is_current_month"`
}

// DailyAverage compara o ritmo diário alcançado com o ritmo necessário.
type DailyAverage struct {
	Achieved float64 `json:"achieved"`
	Needed   float64 `json:"needed"`
	OnTrack  bool    `json:"on_track"`
}

// DashboardSnapshot é o retrato derivado de um vendedor em um mês.
// Nunca é persistido; cada requisição produz um snapshot novo, carimbado
// com o instante da consulta em GeneratedAt.
type DashboardSnapshot struct {
	SalesPerson  string         `json:"sales_person"`
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	HasTarget    bool           `json:"has_target"`
	Target       *SalesTarget   `json:"target"`
	Achieved     AmountProgress `json:"achieved"`
	Remaining    AmountProgress `json:"remaining"`
	Exceeded     float64        `json:"exceeded"`
	Days         DaysMetrics    `json:"days"`
	DailyAverage DailyAverage   `json:"daily_average"`
	Status       TargetStatus   `json:"status"`
	GeneratedAt  time.Time      `json:"generated_at"`
}
