package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/dto"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/middleware"
	testhelpers "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asStudent(c *gin.Context) {
	c.Set(middleware.UserContextKey, &model.User{ID: 7, Email: "sam@college.edu", Name: "sam", Role: model.RoleStudent})
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserHelper(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	user := &model.User{ID: 42}
	c.Set(middleware.UserContextKey, user)
	if got := CurrentUser(c); got != user {
		t.Fatalf("expected stored user, got %+v", got)
	}
}

func TestLoginSuccess(t *testing.T) {
	email := testhelpers.RandomEmail("college.edu")
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: "irrelevant"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(ctx context.Context, gotEmail, gotPassword string) (*model.User, string, error) {
		if gotEmail != email {
			t.Fatalf("unexpected email passed to facade: %q", gotEmail)
		}
		return &model.User{ID: 3, Email: email, Name: "sam", Role: model.RoleStudent}, "sess-abc", nil
	}})

	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.SessionID != "sess-abc" {
		t.Fatalf("expected session id, got %q", out.SessionID)
	}
	if out.User.Email != email || out.User.Role != "student" {
		t.Fatalf("unexpected user payload: %+v", out.User)
	}
}

func TestLoginRejectsForeignDomain(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "sam@gmail.com"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidDomain
	}})

	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var out dto.ErrorResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if out.Error != "Please use your college email" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestLoginMalformedBody(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}
}

func TestCurrentUserEndpoint(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/auth/user", "/auth/user", handler.CurrentUser, asStudent, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out dto.CurrentUserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.User.ID != 7 || out.User.Email != "sam@college.edu" {
		t.Fatalf("unexpected user: %+v", out.User)
	}
}

func TestMenuList(t *testing.T) {
	var gotCategory string
	handler := NewMenuHandler(testhelpers.MenuFacadeStub{MenuFn: func(ctx context.Context, category string) ([]model.MenuItem, error) {
		gotCategory = category
		return []model.MenuItem{
			{ID: 1, Name: "Samosa", Category: "snacks", Price: 1.5, IsAvailable: true},
			{ID: 2, Name: "Masala Dosa", Category: "meals", Price: 4.0, IsAvailable: false},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/menu", "/menu", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotCategory != "" {
		t.Fatalf("expected empty category without query, got %q", gotCategory)
	}

	var out []dto.MenuItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Samosa" || out[1].IsAvailable {
		t.Fatalf("unexpected menu payload: %+v", out)
	}
}

func TestMenuListCategoryQuery(t *testing.T) {
	var gotCategory string
	handler := NewMenuHandler(testhelpers.MenuFacadeStub{MenuFn: func(ctx context.Context, category string) ([]model.MenuItem, error) {
		gotCategory = category
		return nil, nil
	}})

	resp := performRequest(t, http.MethodGet, "/menu", "/menu?category=snacks", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotCategory != "snacks" {
		t.Fatalf("expected category from query, got %q", gotCategory)
	}
	if body := resp.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestOrderCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		Items:      []dto.CartLineRequest{{MenuItemID: 1, Quantity: 2}},
		PickupTime: "12:30",
	})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceOrderFn: func(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error) {
		if userID != 7 {
			t.Fatalf("expected user id from context, got %d", userID)
		}
		if len(lines) != 1 || lines[0].MenuItemID != 1 || lines[0].Quantity != 2 {
			t.Fatalf("unexpected cart lines: %+v", lines)
		}
		if pickupTime != "12:30" {
			t.Fatalf("unexpected pickup time: %q", pickupTime)
		}
		return &model.Order{
			ID:          9,
			UserID:      userID,
			Status:      model.OrderStatusOrdered,
			TotalAmount: 3.0,
			Number:      "QB-123456",
			QRCode:      "data:image/png;base64,AQID",
		}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asStudent, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.Order.OrderNumber != "QB-123456" || out.Order.Status != "ordered" {
		t.Fatalf("unexpected order payload: %+v", out.Order)
	}
	if out.QRCode != "data:image/png;base64,AQID" {
		t.Fatalf("expected qr code echoed at top level, got %q", out.QRCode)
	}
}

func TestOrderCreateEmptyCart(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceOrderFn: func(ctx context.Context, userID int64, lines []model.CartLine, pickupTime, instructions, paymentMethod string) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyCart
	}})

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asStudent, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var out dto.ErrorResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if out.Error != "Cart is empty" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestOrderList(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
		return []model.Order{
			{ID: 1, UserID: userID, Status: model.OrderStatusReady, ItemsSummary: "1:2,3:1"},
			{ID: 2, UserID: userID, Status: model.OrderStatusOrdered},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders", "/orders", handler.List, asStudent, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(out) != 2 || out[0].Items != "1:2,3:1" {
		t.Fatalf("unexpected orders payload: %+v", out)
	}
}

func TestOrderGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error) {
		order := &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPreparing}
		items := []model.OrderItemDetail{{
			OrderItem: model.OrderItem{ID: 5, OrderID: orderID, MenuItemID: 1, Quantity: 2},
			Name:      "Samosa",
			Price:     1.5,
		}}
		return order, items, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/3", handler.Get, asStudent, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out dto.OrderDetailResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.Order.ID != 3 || len(out.Items) != 1 || out.Items[0].Name != "Samosa" {
		t.Fatalf("unexpected detail payload: %+v", out)
	}
	if string(out.Items[0].Customizations) != "{}" {
		t.Fatalf("expected customizations defaulted, got %s", out.Items[0].Customizations)
	}
}

func TestOrderGetNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItemDetail, error) {
		return nil, nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/99", handler.Get, asStudent, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var out dto.ErrorResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if out.Error != "Order not found" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestOrderGetBadID(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/not-a-number", handler.Get, asStudent, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a non-numeric id, got %d", resp.Code)
	}
}

func TestOrderCancel(t *testing.T) {
	var gotOrderID int64
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CancelOrderFn: func(ctx context.Context, userID, orderID int64) error {
		gotOrderID = orderID
		return nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/4/cancel", handler.Cancel, asStudent, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotOrderID != 4 {
		t.Fatalf("expected order id 4, got %d", gotOrderID)
	}

	var out dto.SuccessResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if !out.Success {
		t.Fatalf("expected success acknowledgement, got %s", resp.Body.String())
	}
}

func TestOrderCancelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		message string
	}{
		{name: "not found", err: domainErrors.ErrNotFound, want: http.StatusNotFound, message: "Order not found"},
		{name: "too late", err: domainErrors.ErrInvalidTransition, want: http.StatusBadRequest, message: "Cannot cancel order at this stage"},
		{name: "storage failure", err: errors.New("boom"), want: http.StatusInternalServerError, message: "failed to cancel order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{CancelOrderFn: func(ctx context.Context, userID, orderID int64) error {
				return tt.err
			}})

			resp := performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/4/cancel", handler.Cancel, asStudent, nil, nil)
			if resp.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.Code)
			}

			var out dto.ErrorResponse
			_ = json.Unmarshal(resp.Body.Bytes(), &out)
			if out.Error != tt.message {
				t.Fatalf("unexpected error message: %q", out.Error)
			}
		})
	}
}

func TestStaffActiveOrders(t *testing.T) {
	stub := &testhelpers.StaffFacadeStub{ActiveOrdersFn: func(ctx context.Context) ([]model.StaffOrder, error) {
		return []model.StaffOrder{{
			Order:    model.Order{ID: 1, UserID: 7, Status: model.OrderStatusPreparing, Number: "QB-000001"},
			UserName: "sam",
			Items: []model.OrderItemDetail{{
				OrderItem: model.OrderItem{ID: 2, OrderID: 1, MenuItemID: 1, Quantity: 1},
				Name:      "Samosa",
				Price:     1.5,
			}},
		}}, nil
	}}
	handler := NewStaffHandler(stub)

	resp := performRequest(t, http.MethodGet, "/staff/orders", "/staff/orders", handler.ActiveOrders, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out []dto.StaffOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(out) != 1 || out[0].UserName != "sam" || len(out[0].Items) != 1 {
		t.Fatalf("unexpected dashboard payload: %+v", out)
	}
}

func TestStaffUpdateStatusAcceptsAnyValue(t *testing.T) {
	stub := &testhelpers.StaffFacadeStub{}
	handler := NewStaffHandler(stub)

	for _, status := range []string{"preparing", "ready", "collected", "definitely-not-a-status"} {
		body, _ := json.Marshal(dto.StatusUpdateRequest{Status: status})
		resp := performRequest(t, http.MethodPatch, "/staff/orders/:id/status", "/staff/orders/1/status", handler.UpdateStatus, nil, body, jsonHeaders)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for status %q, got %d", status, resp.Code)
		}
	}
	if len(stub.StatusUpdates) != 4 || stub.StatusUpdates[3] != "definitely-not-a-status" {
		t.Fatalf("expected all statuses forwarded verbatim, got %v", stub.StatusUpdates)
	}
}

func TestStaffUpdateStatusBadID(t *testing.T) {
	handler := NewStaffHandler(&testhelpers.StaffFacadeStub{})
	body, _ := json.Marshal(dto.StatusUpdateRequest{Status: "ready"})
	resp := performRequest(t, http.MethodPatch, "/staff/orders/:id/status", "/staff/orders/abc/status", handler.UpdateStatus, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestStaffSetAvailability(t *testing.T) {
	stub := &testhelpers.StaffFacadeStub{}
	handler := NewStaffHandler(stub)

	body, _ := json.Marshal(dto.AvailabilityRequest{IsAvailable: false})
	resp := performRequest(t, http.MethodPatch, "/staff/menu/:id/availability", "/staff/menu/2/availability", handler.SetAvailability, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if available, ok := stub.AvailabilityUpdates[2]; !ok || available {
		t.Fatalf("expected item 2 marked unavailable, got %v", stub.AvailabilityUpdates)
	}
}

func TestStaffTodayStats(t *testing.T) {
	stub := &testhelpers.StaffFacadeStub{TodayStatsFn: func(ctx context.Context) (*model.DayStats, error) {
		return &model.DayStats{TotalOrders: 5, TotalRevenue: 42.5, AvgOrderValue: 8.5, ReadyCount: 1, PreparingCount: 2}, nil
	}}
	handler := NewStaffHandler(stub)

	resp := performRequest(t, http.MethodGet, "/staff/analytics/today", "/staff/analytics/today", handler.TodayStats, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out dto.StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.TotalOrders != 5 || out.TotalRevenue != 42.5 || out.PreparingCount != 2 {
		t.Fatalf("unexpected stats payload: %+v", out)
	}
}

func TestStaffTodayStatsError(t *testing.T) {
	handler := NewStaffHandler(&testhelpers.StaffFacadeStub{TodayStatsFn: func(ctx context.Context) (*model.DayStats, error) {
		return nil, errors.New("storage unavailable")
	}})

	resp := performRequest(t, http.MethodGet, "/staff/analytics/today", "/staff/analytics/today", handler.TodayStats, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
