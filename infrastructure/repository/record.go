package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adityashm/data-analysis-dashboard/infrastructure/database/sqlite"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

const (
	dailyRecordsTable = "daily_records dr"
)

const insertDailyRecordSQL = `
	INSERT INTO daily_records (date, category, sales_cents, expenses_cents, units_sold)
	VALUES (?, ?, ?, ?, ?)
`

type RecordRepository interface {
	BulkInsert(ctx context.Context, records []*domain.DailyRecord) (int64, error)
	CountRecords(ctx context.Context) (int64, error)
	RecordSeedRun(ctx context.Context, runID string, year int, inserted int64) error
	MonthlySeries(ctx context.Context, filter *domain.RangeFilter) ([]*domain.MonthlyPoint, error)
	CategoryBreakdown(ctx context.Context) ([]*domain.CategoryStat, error)
	SummaryAggregates(ctx context.Context) (*domain.StoreTotals, error)
}

type recordRepository struct {
	conn *sqlite.Connection
}

func NewRecordRepository(conn *sqlite.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

// BulkInsert grava os registros em uma única transação, preservando a
// ordem de chegada para que os IDs sequenciais reflitam a inserção.
func (r *recordRepository) BulkInsert(ctx context.Context, records []*domain.DailyRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertDailyRecordSQL)
		if err != nil {
			return fmt.Errorf("erro ao preparar o statement: %w", err)
		}
		defer stmt.Close()

		for _, record := range records {
			_, err := stmt.ExecContext(
				ctx,
				record.Date.Format(time.DateOnly),
				record.Category,
				record.SalesCents,
				record.ExpensesCents,
				record.UnitsSold,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir o registro de %s: %w", record.Date.Format(time.DateOnly), err)
			}

			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, NewStoreError(ErrStoreUnavailable, "BulkInsert", err.Error())
	}

	return inserted, nil
}

func (r *recordRepository) CountRecords(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(dailyRecordsTable).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conn, err := r.conn.Acquire(ctx)
	if err != nil {
		return 0, NewStoreError(ErrStoreUnavailable, "CountRecords", err.Error())
	}
	defer conn.Close()

	var total int64
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, NewStoreError(ErrStoreUnavailable, "CountRecords", err.Error())
	}

	return total, nil
}

func (r *recordRepository) RecordSeedRun(ctx context.Context, runID string, year int, inserted int64) error {
	query, args, err := squirrel.
		Insert("seed_runs").
		Columns("id", "seed_year", "records_inserted").
		Values(runID, year, inserted).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	conn, err := r.conn.Acquire(ctx)
	if err != nil {
		return NewStoreError(ErrStoreUnavailable, "RecordSeedRun", err.Error())
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return NewStoreError(ErrStoreUnavailable, "RecordSeedRun", err.Error())
	}

	return nil
}

// MonthlySeries agrega os registros por mês calendário em ordem
// cronológica. Meses sem registros não aparecem no resultado.
func (r *recordRepository) MonthlySeries(ctx context.Context, filter *domain.RangeFilter) ([]*domain.MonthlyPoint, error) {
	builder := squirrel.
		Select(
			"strftime('%Y-%m', dr.date) AS month",
			"SUM(dr.sales_cents) AS total_sales_cents",
			"SUM(dr.expenses_cents) AS total_expenses_cents",
			"SUM(dr.units_sold) AS total_units",
		).
		From(dailyRecordsTable)

	if filter != nil {
		if filter.StartDate != nil {
			builder = builder.Where(squirrel.GtOrEq{"dr.date": filter.StartDate.Format(time.DateOnly)})
		}
		if filter.EndDate != nil {
			builder = builder.Where(squirrel.LtOrEq{"dr.date": filter.EndDate.Format(time.DateOnly)})
		}
	}

	query, args, err := builder.
		GroupBy("strftime('%Y-%m', dr.date)").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conn, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "MonthlySeries", err.Error())
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "MonthlySeries", err.Error())
	}
	defer rows.Close()

	points := make([]*domain.MonthlyPoint, 0)
	for rows.Next() {
		point, err := r.scanMonthlyRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear a série mensal: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// CategoryBreakdown agrega os registros por categoria, da maior para a
// menor venda total. Empates mantêm a ordem de primeira aparição.
func (r *recordRepository) CategoryBreakdown(ctx context.Context) ([]*domain.CategoryStat, error) {
	query, args, err := squirrel.
		Select(
			"dr.category",
			"SUM(dr.sales_cents) AS total_sales_cents",
			"SUM(dr.expenses_cents) AS total_expenses_cents",
			"SUM(dr.sales_cents) - SUM(dr.expenses_cents) AS profit_cents",
			"COUNT(*) AS transaction_count",
		).
		From(dailyRecordsTable).
		GroupBy("dr.category").
		OrderBy("total_sales_cents DESC", "MIN(dr.id) ASC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conn, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "CategoryBreakdown", err.Error())
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "CategoryBreakdown", err.Error())
	}
	defer rows.Close()

	stats := make([]*domain.CategoryStat, 0)
	for rows.Next() {
		stat := &domain.CategoryStat{}

		err := rows.Scan(
			&stat.Category,
			&stat.TotalSalesCents,
			&stat.TotalExpensesCents,
			&stat.ProfitCents,
			&stat.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear a categoria: %w", err)
		}

		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *recordRepository) SummaryAggregates(ctx context.Context) (*domain.StoreTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(dr.sales_cents), 0)",
			"COALESCE(SUM(dr.expenses_cents), 0)",
			"COALESCE(SUM(dr.units_sold), 0)",
			"COUNT(DISTINCT dr.date)",
		).
		From(dailyRecordsTable).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conn, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "SummaryAggregates", err.Error())
	}
	defer conn.Close()

	totals := &domain.StoreTotals{}

	err = conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.TotalSalesCents,
		&totals.TotalExpensesCents,
		&totals.TotalUnits,
		&totals.TradingDays,
	)
	if err != nil {
		return nil, NewStoreError(ErrStoreUnavailable, "SummaryAggregates", err.Error())
	}

	return totals, nil
}

func (r *recordRepository) scanMonthlyRows(rows *sql.Rows) (*domain.MonthlyPoint, error) {
	point := &domain.MonthlyPoint{}

	err := rows.Scan(
		&point.Month,
		&point.TotalSalesCents,
		&point.TotalExpensesCents,
		&point.TotalUnits,
	)
	if err != nil {
		return nil, err
	}

	return point, nil
}
