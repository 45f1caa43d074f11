package repo

import (
	"context"
	"database/sql"
	"time"
)

// PostgresAnalyticsRepository derives the dashboard in SQL. The daily series
// is zero-filled with generate_series so it always yields exactly 7 rows.
type PostgresAnalyticsRepository struct {
	db                *sql.DB
	lowStockThreshold int
}

func NewPostgresAnalyticsRepository(db *sql.DB, lowStockThreshold int) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db, lowStockThreshold: lowStockThreshold}
}

func (r *PostgresAnalyticsRepository) GetDashboard() (Dashboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d Dashboard

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&d.TotalProducts)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&d.TotalTransactions)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, r.lowStockThreshold).Scan(&d.LowStockCount)

	_ = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_price), 0), COUNT(*)
		FROM transactions
		WHERE type = 'OUT' AND timestamp::date = CURRENT_DATE
	`).Scan(&d.TodayRevenue, &d.TodayTransactions)

	daily, err := r.dailyStats(ctx)
	if err != nil {
		return d, err
	}
	d.Daily = daily

	monthly, err := r.monthlyStats(ctx)
	if err != nil {
		return d, err
	}
	d.Monthly = monthly

	return d, nil
}

func (r *PostgresAnalyticsRepository) dailyStats(ctx context.Context) ([]DailyStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.day::date, COALESCE(SUM(t.total_price), 0)
		FROM generate_series(CURRENT_DATE - 6, CURRENT_DATE, '1 day') AS d(day)
		LEFT JOIN transactions t
			ON t.timestamp::date = d.day AND t.type = 'OUT'
		GROUP BY d.day
		ORDER BY d.day
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []DailyStat
	for rows.Next() {
		var day time.Time
		var revenue int64
		if err := rows.Scan(&day, &revenue); err != nil {
			return nil, err
		}
		stats = append(stats, DailyStat{
			Label:   weekdayShort[day.Weekday()],
			Date:    day.Format("2006-01-02"),
			Revenue: revenue,
		})
	}
	return stats, rows.Err()
}

func (r *PostgresAnalyticsRepository) monthlyStats(ctx context.Context) ([]MonthlyStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(timestamp, 'YYYY-MM') AS month, SUM(total_price)
		FROM transactions
		WHERE type = 'OUT'
		GROUP BY month
		ORDER BY month
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []MonthlyStat
	for rows.Next() {
		var s MonthlyStat
		if err := rows.Scan(&s.Month, &s.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
