package dto

import "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"

// StaffOrderResponse is an active order annotated for the staff dashboard.
type StaffOrderResponse struct {
	OrderResponse
	UserName string              `json:"user_name"`
	Items    []OrderItemResponse `json:"items"`
}

// StatusUpdateRequest carries the status staff wants to set. The value is
// persisted as-is without validation.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatsResponse aggregates today's orders.
type StatsResponse struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	ReadyCount     int64   `json:"ready_count"`
	PreparingCount int64   `json:"preparing_count"`
}

// ToStaffOrderResponse converts an annotated domain order.
func ToStaffOrderResponse(so model.StaffOrder) StaffOrderResponse {
	items := make([]OrderItemResponse, 0, len(so.Items))
	for _, item := range so.Items {
		items = append(items, ToOrderItemResponse(item))
	}
	return StaffOrderResponse{
		OrderResponse: ToOrderResponse(so.Order),
		UserName:      so.UserName,
		Items:         items,
	}
}

// ToStatsResponse converts domain day stats.
func ToStatsResponse(s *model.DayStats) StatsResponse {
	return StatsResponse{
		TotalOrders:    s.TotalOrders,
		TotalRevenue:   s.TotalRevenue,
		AvgOrderValue:  s.AvgOrderValue,
		ReadyCount:     s.ReadyCount,
		PreparingCount: s.PreparingCount,
	}
}
