package repo

import (
	"sort"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// InMemoryAnalyticsRepository recomputes the dashboard on demand by scanning
// the catalog and the ledger. It never mutates either.
type InMemoryAnalyticsRepository struct {
	productRepo       ProductRepository
	transactionRepo   TransactionRepository
	lowStockThreshold int
	now               func() time.Time
}

func NewInMemoryAnalyticsRepository(lowStockThreshold int) *InMemoryAnalyticsRepository {
	return &InMemoryAnalyticsRepository{
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

func (r *InMemoryAnalyticsRepository) SetRepositories(
	productRepo ProductRepository,
	transactionRepo TransactionRepository,
) {
	r.productRepo = productRepo
	r.transactionRepo = transactionRepo
}

// GetDashboard implements AnalyticsRepository.
func (r *InMemoryAnalyticsRepository) GetDashboard() (Dashboard, error) {
	d := Dashboard{}

	products, err := r.productRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalProducts = len(products)
	for _, p := range products {
		if p.Stock < r.lowStockThreshold {
			d.LowStockCount++
		}
	}

	transactions, err := r.transactionRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalTransactions = len(transactions)

	now := r.now()
	today := dateOf(now)

	// Last 7 calendar days ending today, oldest first, zero-filled.
	dailyRevenue := map[string]int64{}
	days := make([]time.Time, 7)
	for i := range 7 {
		day := now.AddDate(0, 0, -(6 - i))
		days[i] = day
		dailyRevenue[dateOf(day)] = 0
	}

	monthlyRevenue := map[string]int64{}
	for _, t := range transactions {
		if t.Type != models.TransactionOut {
			continue
		}
		day := dateOf(t.Timestamp)
		if _, ok := dailyRevenue[day]; ok {
			dailyRevenue[day] += t.TotalPrice
		}
		if day == today {
			d.TodayRevenue += t.TotalPrice
			d.TodayTransactions++
		}
		month := t.Timestamp.Format("2006-01")
		monthlyRevenue[month] += t.TotalPrice
	}

	d.Daily = make([]DailyStat, 7)
	for i, day := range days {
		d.Daily[i] = DailyStat{
			Label:   weekdayShort[day.Weekday()],
			Date:    dateOf(day),
			Revenue: dailyRevenue[dateOf(day)],
		}
	}

	months := make([]string, 0, len(monthlyRevenue))
	for month := range monthlyRevenue {
		months = append(months, month)
	}
	sort.Strings(months)
	d.Monthly = make([]MonthlyStat, len(months))
	for i, month := range months {
		d.Monthly[i] = MonthlyStat{Month: month, Revenue: monthlyRevenue[month]}
	}

	return d, nil
}

// dateOf truncates a point in time to its local calendar date.
func dateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
