package domain

import "time"

// MonthlyAchievementEntry é o total de vendas consolidado de um mês fechado,
// mantido pela sincronização noturna como cache da agregação do ledger.
type MonthlyAchievementEntry struct {
	ID             int64     `json:"id"`
	SalesPerson    string    `json:"sales_person"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	AchievedAmount float64   `json:"achieved_amount"`
	OrdersCount    int       `json:"orders_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
