package repo

import (
	"testing"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

func newAnalyticsFixture(t *testing.T, now time.Time) (*InMemoryAnalyticsRepository, *InMemoryProductRepository, *InMemoryTransactionRepository) {
	t.Helper()

	products := NewInMemoryProductRepository()
	transactions := NewInMemoryTransactionRepository()
	analytics := NewInMemoryAnalyticsRepository(10)
	analytics.SetRepositories(products, transactions)
	analytics.now = func() time.Time { return now }
	return analytics, products, transactions
}

func TestGetDashboard_DailySeriesAlwaysSevenPoints(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, _, transactions := newAnalyticsFixture(t, now)

	// Revenue on today and two days ago; an IN entry and an old OUT entry
	// that must not contribute.
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 195000, Timestamp: now})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 850, Timestamp: now.AddDate(0, 0, -2)})
	transactions.Append(models.Transaction{Type: models.TransactionIn, TotalPrice: -455000, Timestamp: now})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 78000, Timestamp: now.AddDate(0, 0, -10)})

	d, err := analytics.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}

	if len(d.Daily) != 7 {
		t.Fatalf("expected exactly 7 daily points, got %d", len(d.Daily))
	}
	for i, stat := range d.Daily {
		want := now.AddDate(0, 0, -(6 - i)).Format("2006-01-02")
		if stat.Date != want {
			t.Errorf("point %d: expected date %s, got %s", i, want, stat.Date)
		}
	}
	if d.Daily[6].Revenue != 195000 {
		t.Errorf("expected today's point 195000, got %d", d.Daily[6].Revenue)
	}
	if d.Daily[4].Revenue != 850 {
		t.Errorf("expected 850 two days ago, got %d", d.Daily[4].Revenue)
	}
	for i := range d.Daily {
		if i != 4 && i != 6 && d.Daily[i].Revenue != 0 {
			t.Errorf("expected zero-filled point %d, got %d", i, d.Daily[i].Revenue)
		}
	}
}

func TestGetDashboard_DailySeriesOnEmptyLedger(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, _, _ := newAnalyticsFixture(t, now)

	d, err := analytics.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if len(d.Daily) != 7 {
		t.Fatalf("expected 7 points on empty ledger, got %d", len(d.Daily))
	}
	for i, stat := range d.Daily {
		if stat.Revenue != 0 {
			t.Errorf("point %d: expected zero, got %d", i, stat.Revenue)
		}
	}
}

func TestGetDashboard_WeekdayLabels(t *testing.T) {
	// 2026-08-29 is a Saturday.
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, _, _ := newAnalyticsFixture(t, now)

	d, _ := analytics.GetDashboard()
	want := []string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}
	for i, stat := range d.Daily {
		if stat.Label != want[i] {
			t.Errorf("point %d: expected label %s, got %s", i, want[i], stat.Label)
		}
	}
}

func TestGetDashboard_MonthlySeriesSkipsEmptyMonths(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, _, transactions := newAnalyticsFixture(t, now)

	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 100, Timestamp: time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 200, Timestamp: time.Date(2026, 3, 20, 0, 0, 0, 0, time.Local)})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 400, Timestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)})
	// April through July have only restocks.
	transactions.Append(models.Transaction{Type: models.TransactionIn, TotalPrice: -700, Timestamp: time.Date(2026, 5, 2, 0, 0, 0, 0, time.Local)})

	d, _ := analytics.GetDashboard()
	if len(d.Monthly) != 2 {
		t.Fatalf("expected 2 observed months, got %d: %+v", len(d.Monthly), d.Monthly)
	}
	if d.Monthly[0].Month != "2026-03" || d.Monthly[0].Revenue != 300 {
		t.Errorf("unexpected first month %+v", d.Monthly[0])
	}
	if d.Monthly[1].Month != "2026-08" || d.Monthly[1].Revenue != 400 {
		t.Errorf("unexpected second month %+v", d.Monthly[1])
	}
}

func TestGetDashboard_TodayTotalsIgnoreRestocksAndOtherDays(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, _, transactions := newAnalyticsFixture(t, now)

	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 65000, Timestamp: now.Add(-2 * time.Hour)})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 850, Timestamp: now})
	transactions.Append(models.Transaction{Type: models.TransactionIn, TotalPrice: -455000, Timestamp: now})
	transactions.Append(models.Transaction{Type: models.TransactionOut, TotalPrice: 78000, Timestamp: now.AddDate(0, 0, -1)})

	d, _ := analytics.GetDashboard()
	if d.TodayRevenue != 65850 {
		t.Errorf("expected today's revenue 65850, got %d", d.TodayRevenue)
	}
	if d.TodayTransactions != 2 {
		t.Errorf("expected 2 transactions today, got %d", d.TodayTransactions)
	}
}

func TestGetDashboard_LowStockCount(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	analytics, products, _ := newAnalyticsFixture(t, now)

	products.Create(models.Product{ID: "P001", Stock: 150})
	products.Create(models.Product{ID: "P002", Stock: 8})
	products.Create(models.Product{ID: "P005", Stock: 5})
	products.Create(models.Product{ID: "P006", Stock: 10}) // exactly at threshold is not low

	d, _ := analytics.GetDashboard()
	if d.LowStockCount != 2 {
		t.Errorf("expected 2 low-stock products, got %d", d.LowStockCount)
	}
	if d.TotalProducts != 4 {
		t.Errorf("expected 4 products, got %d", d.TotalProducts)
	}
}
