package repo

// DailyStat is one point of the 7-day revenue series. Label is the localized
// weekday abbreviation, Date the calendar day in YYYY-MM-DD.
type DailyStat struct {
	Label   string `json:"label"`
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// MonthlyStat is one point of the monthly revenue series, keyed by YYYY-MM.
type MonthlyStat struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// Dashboard is the admin analytics view, derived entirely from the catalog
// and the ledger.
type Dashboard struct {
	TodayRevenue      int64         `json:"today_revenue"`
	TodayTransactions int           `json:"today_transactions"`
	LowStockCount     int           `json:"low_stock_count"`
	TotalProducts     int           `json:"total_products"`
	TotalTransactions int           `json:"total_transactions"`
	Daily             []DailyStat   `json:"daily"`
	Monthly           []MonthlyStat `json:"monthly"`
}

type AnalyticsRepository interface {
	GetDashboard() (Dashboard, error)
}

// weekday abbreviations in id-ID, indexed by time.Weekday (Sunday first).
var weekdayShort = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}
