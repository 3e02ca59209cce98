package entity

import "github.com/shopspring/decimal"

// DashboardStats is the admin overview. The LastDay fields cover the 24 hours before the query.
type DashboardStats struct {
	TotalUsers             int64           `json:"totalUsers"`
	TotalTransactions      int64           `json:"totalTransaction"`
	TotalSalesAmount       decimal.Decimal `json:"totalSalesAmount"`
	LastDaySalesAmount     decimal.Decimal `json:"totalSalesAmountOnDayBefore"`
	LastDayUsersRegistered int64           `json:"totalUsersRegisteredOnDayBefore"`
	LastDayTransactions    int64           `json:"totalTransactionsOnDayBefore"`
}
