package domain

import "time"

// OrderStatus é o estado de um pedido no ledger de vendas.
// O ledger pertence ao subsistema de pedidos; este serviço só lê.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// SalesOrder é a projeção de um pedido usada na agregação de vendas.
type SalesOrder struct {
	ID          string      `json:"id"`
	SalesPerson string      `json:"sales_person"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
