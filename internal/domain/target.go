package domain

import "time"

// AssignmentType indica como a meta foi atribuída ao vendedor.
// O valor é apenas informativo, o núcleo não interpreta a origem.
type AssignmentType string

const (
	AssignmentManual     AssignmentType = "manual"
	AssignmentFormula    AssignmentType = "formula"
	AssignmentHistorical AssignmentType = "historical"
)

// SalesTarget representa a meta mensal de vendas de um vendedor.
// Única por (sales_person, year, month).
type SalesTarget struct {
	ID             int64          `json:"id"`
	SalesPerson    string         `json:"sales_person"`
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	TargetAmount   float64        `json:"target_amount"`
	AssignmentType AssignmentType `json:"assignment_type"`
	AssignedBy     string         `json:"assigned_by"`
	Notes          *string        `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
