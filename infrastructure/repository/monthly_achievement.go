package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const monthlyAchievementsTable = "monthly_achievements"

// MonthlyAchievementRepository guarda os totais consolidados de meses
// fechados, alimentados pela sincronização noturna.
type MonthlyAchievementRepository interface {
	GetByKey(salesPerson string, year, month int) (*domain.MonthlyAchievementEntry, error)
	SaveOrUpdate(entry *domain.MonthlyAchievementEntry) error
}

type monthlyAchievementRepository struct {
	conn *postgres.Connection
}

func NewMonthlyAchievementRepository(conn *postgres.Connection) MonthlyAchievementRepository {
	return &monthlyAchievementRepository{
		conn: conn,
	}
}

func (r *monthlyAchievementRepository) GetByKey(salesPerson string, year, month int) (*domain.MonthlyAchievementEntry, error) {
	query, args, err := squirrel.
		Select("id, sales_person, year, month, achieved_amount, orders_count, created_at, updated_at").
		From(monthlyAchievementsTable).
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

	entry := &domain.MonthlyAchievementEntry{}
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.SalesPerson,
		&entry.Year,
		&entry.Month,
		&entry.AchievedAmount,
		&entry.OrdersCount,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "erro ao buscar consolidado mensal")
	}

	return entry, nil
}

func (r *monthlyAchievementRepository) SaveOrUpdate(entry *domain.MonthlyAchievementEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(monthlyAchievementsTable).
		Columns("sales_person", "year", "month", "achieved_amount", "orders_count").
		Values(
			entry.SalesPerson,
			entry.Year,
			entry.Month,
			entry.AchievedAmount,
			entry.OrdersCount,
		).
		Suffix(`
			ON CONFLICT (sales_person, year, month) DO UPDATE SET
				achieved_amount = EXCLUDED.achieved_amount,
				orders_count = EXCLUDED.orders_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return pkgerrors.Wrap(err, "erro ao gravar consolidado mensal")
	}

	return nil
}
