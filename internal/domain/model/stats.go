package model

// DayStats aggregates orders created on one calendar day. Totals count every
// order regardless of status; ReadyCount and PreparingCount are per-status.
type DayStats struct {
	TotalOrders    int64
	TotalRevenue   float64
	AvgOrderValue  float64
	ReadyCount     int64
	PreparingCount int64
}
