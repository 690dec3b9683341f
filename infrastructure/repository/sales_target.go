package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const (
	salesTargetsTable   = "sales_targets"
	salesTargetsColumns = "id, sales_person, year, month, target_amount, assignment_type, assigned_by, notes, created_at, updated_at"
)

// TargetUpsert carrega os dados de um set-target. Campos opcionais nulos
// preservam o valor já gravado quando a chave existe.
type TargetUpsert struct {
	SalesPerson    string
	Year           int
	Month          int
	TargetAmount   float64
	AssignmentType *domain.AssignmentType
	AssignedBy     *string
	Notes          *string
}

type SalesTargetRepository interface {
	Upsert(params TargetUpsert) (*domain.SalesTarget, error)
	GetByKey(salesPerson string, year, month int) (*domain.SalesTarget, error)
	ListByYear(salesPerson string, year int) ([]*domain.SalesTarget, error)
}

type salesTargetRepository struct {
	conn *postgres.Connection
}

func NewSalesTargetRepository(conn *postgres.Connection) SalesTargetRepository {
	return &salesTargetRepository{
		conn: conn,
	}
}

// Upsert insere ou atualiza a meta em um único comando atômico. A restrição
// UNIQUE (sales_person, year, month) serializa escritores concorrentes da
// mesma chave: nunca há duplicata, prevalece o último escritor.
func (r *salesTargetRepository) Upsert(params TargetUpsert) (*domain.SalesTarget, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(salesTargetsTable).
		Columns("sales_person", "year", "month", "target_amount", "assignment_type", "assigned_by", "notes").
		Values(
			params.SalesPerson,
			params.Year,
			params.Month,
			params.TargetAmount,
			squirrel.Expr("COALESCE(?, 'manual')", assignmentTypeArg(params.AssignmentType)),
			params.AssignedBy,
			params.Notes,
		).
		Suffix(`
			ON CONFLICT (sales_person, year, month) DO UPDATE SET
				target_amount = EXCLUDED.target_amount,
				assignment_type = COALESCE(?, sales_targets.assignment_type),
				assigned_by = COALESCE(?, sales_targets.assigned_by),
				notes = COALESCE(?, sales_targets.notes),
				updated_at = NOW()
			RETURNING `+salesTargetsColumns,
			assignmentTypeArg(params.AssignmentType),
			params.AssignedBy,
			params.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	target, err := scanTarget(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, pkgerrors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return nil, pkgerrors.Wrap(err, "erro ao gravar meta de vendas")
	}

	return target, nil
}

func (r *salesTargetRepository) GetByKey(salesPerson string, year, month int) (*domain.SalesTarget, error) {
	query, args, err := squirrel.
		Select(salesTargetsColumns).
		From(salesTargetsTable).
		Where(squirrel.Eq{
			"sales_person": salesPerson,
			"year":         year,
			"month":        month,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	target, err := scanTarget(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "erro ao buscar meta de vendas")
	}

	return target, nil
}

func (r *salesTargetRepository) ListByYear(salesPerson string, year int) ([]*domain.SalesTarget, error) {
	query, args, err := squirrel.
		Select(salesTargetsColumns).
		From(salesTargetsTable).
		Where(squirrel.Eq{"sales_person": salesPerson, "year": year}).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar metas de vendas")
	}
	defer rows.Close()

	targets := make([]*domain.SalesTarget, 0)
	for rows.Next() {
		target, err := scanTargetRows(rows)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao escanear meta de vendas")
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro durante a iteração de linhas")
	}

	return targets, nil
}

// assignmentTypeArg converte o ponteiro em um argumento SQL nulo quando ausente
func assignmentTypeArg(t *domain.AssignmentType) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}

func scanTarget(row *sql.Row) (*domain.SalesTarget, error) {
	target := &domain.SalesTarget{}
	var assignedBy sql.NullString

	err := row.Scan(
		&target.ID,
		&target.SalesPerson,
		&target.Year,
		&target.Month,
		&target.TargetAmount,
		&target.AssignmentType,
		&assignedBy,
		&target.Notes,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	target.AssignedBy = assignedBy.String
	return target, nil
}

func scanTargetRows(rows *sql.Rows) (*domain.SalesTarget, error) {
	target := &domain.SalesTarget{}
	var assignedBy sql.NullString

	err := rows.Scan(
		&target.ID,
		&target.SalesPerson,
		&target.Year,
		&target.Month,
		&target.TargetAmount,
		&target.AssignmentType,
		&assignedBy,
		&target.Notes,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	target.AssignedBy = assignedBy.String
	return target, nil
}
