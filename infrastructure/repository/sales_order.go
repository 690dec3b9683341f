package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const salesOrdersTable = "sales_orders"

// SalesOrderRepository é o acesso somente-leitura ao ledger de pedidos.
// O ciclo de vida dos pedidos pertence ao subsistema de vendas; aqui apenas
// agregamos valores por vendedor e período.
type SalesOrderRepository interface {
	SumAmountByPeriod(salesPerson string, start, end time.Time) (float64, int, error)
	ListSalesPeopleByPeriod(start, end time.Time) ([]string, error)
}

type salesOrderRepository struct {
	conn *postgres.Connection
}

func NewSalesOrderRepository(conn *postgres.Connection) SalesOrderRepository {
	return &salesOrderRepository{
		conn: conn,
	}
}

// SumAmountByPeriod soma o valor dos pedidos do vendedor criados dentro de
// [start, end), ignorando pedidos cancelados. Retorna também a quantidade de
// pedidos somados. Sem pedidos no período o total é zero, não erro.
func (r *salesOrderRepository) SumAmountByPeriod(salesPerson string, start, end time.Time) (float64, int, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(total_amount), 0)", "COUNT(*)").
		From(salesOrdersTable).
		Where(squirrel.Eq{"sales_person": salesPerson}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}).
		Where(squirrel.NotEq{"status": domain.OrderStatusCancelled}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&total, &count); err != nil {
		return 0, 0, pkgerrors.Wrap(err, "erro ao agregar pedidos do ledger")
	}

	return total, count, nil
}

// ListSalesPeopleByPeriod retorna os vendedores com ao menos um pedido não
// cancelado criado dentro de [start, end). Usado pela consolidação mensal.
func (r *salesOrderRepository) ListSalesPeopleByPeriod(start, end time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT sales_person").
		From(salesOrdersTable).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}).
		Where(squirrel.NotEq{"status": domain.OrderStatusCancelled}).
		OrderBy("sales_person ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar vendedores do período")
	}
	defer rows.Close()

	salesPeople := make([]string, 0)
	for rows.Next() {
		var salesPerson string
		if err := rows.Scan(&salesPerson); err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao escanear vendedor")
		}
		salesPeople = append(salesPeople, salesPerson)
	}

	if err = rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro durante a iteração de linhas")
	}

	return salesPeople, nil
}
