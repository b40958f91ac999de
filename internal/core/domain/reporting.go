package domain

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate snapshot shown on the shop dashboard.
type DashboardStats struct {
	TodayJobs              int             `json:"todayJobs"`
	TotalJobs              int             `json:"totalJobs"`
	TotalPages             int             `json:"totalPages"`
	TotalUnpaid            decimal.Decimal `json:"totalUnpaid"`
	RecentJobs             []PrintJob      `json:"recentJobs"`
	ClassesWithHighBalance []Class         `json:"classesWithHighBalance"`
}
