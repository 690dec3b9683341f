package domain

// PerformanceReport é o resumo compacto de desempenho de um mês:
// o total vendido, a meta (quando existe) e o percentual atingido.
type PerformanceReport struct {
	SalesPerson        string       `json:"sales_person"`
	Year               int          `json:"year"`
	Month              int          `json:"month"`
	AchievedSales      float64      `json:"achieved_sales"`
	Target             *SalesTarget `json:"target"`
	AchievedPercentage float64      `json:"achieved_percentage"`
}
