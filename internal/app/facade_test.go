package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/session"
	testhelpers "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/test"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/usecase"
)

func newFacade() (*CanteenFacade, *testhelpers.UserRepositoryStub, *testhelpers.MenuRepositoryStub, *testhelpers.OrderRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	sessions := session.NewStore()
	authUC := usecase.NewAuthUseCase(userRepo, sessions, "college.edu")

	menuRepo := testhelpers.NewMenuRepositoryStub(
		model.MenuItem{ID: 1, Name: "Samosa", Category: "snacks", Price: 1.5, IsAvailable: true},
	)
	menuUC := usecase.NewMenuUseCase(menuRepo)

	orderRepo := testhelpers.NewOrderRepositoryStub()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderUC := usecase.NewOrderUseCase(orderRepo, menuRepo, testhelpers.EncoderStub{}, logger)

	analyticsUC := usecase.NewAnalyticsUseCase(orderRepo)

	facade := NewCanteenFacade(authUC, menuUC, orderUC, analyticsUC)
	return facade, userRepo, menuRepo, orderRepo
}

func TestCanteenFacadeAuth(t *testing.T) {
	facade, users, _, _ := newFacade()

	user, sessionID, err := facade.Login(context.Background(), "sam@college.edu", "whatever")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Fatalf("expected student role, got %q", user.Role)
	}
	if _, err := users.GetByEmail(context.Background(), "sam@college.edu"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	resolved, ok := facade.ResolveSession(sessionID)
	if !ok || resolved.ID != user.ID {
		t.Fatalf("session did not resolve to the logged-in user")
	}

	if _, _, err := facade.Login(context.Background(), "sam@gmail.com", ""); !errors.Is(err, domainErrors.ErrInvalidDomain) {
		t.Fatalf("expected domain rejection, got %v", err)
	}
}

func TestCanteenFacadeMenu(t *testing.T) {
	facade, _, menu, _ := newFacade()

	items, err := facade.Menu(context.Background(), "snacks")
	if err != nil || len(items) != 1 || items[0].Name != "Samosa" {
		t.Fatalf("unexpected menu: %v %+v", err, items)
	}

	if err := facade.SetMenuAvailability(context.Background(), 1, false); err != nil {
		t.Fatalf("set availability error: %v", err)
	}
	if available := menu.Availability[1]; available {
		t.Fatalf("expected item marked unavailable")
	}
}

func TestCanteenFacadeOrders(t *testing.T) {
	facade, _, _, orders := newFacade()

	lines := []model.CartLine{{MenuItemID: 1, Quantity: 2}}
	order, err := facade.PlaceOrder(context.Background(), 7, lines, "12:30", "", "")
	if err != nil {
		t.Fatalf("place order error: %v", err)
	}
	if order.TotalAmount != 3.0 || order.Status != model.OrderStatusOrdered {
		t.Fatalf("unexpected order: %+v", order)
	}

	listed, err := facade.Orders(context.Background(), 7)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	got, _, err := facade.Order(context.Background(), 7, order.ID)
	if err != nil || got.ID != order.ID {
		t.Fatalf("unexpected detail: %v %+v", err, got)
	}

	if err := facade.UpdateOrderStatus(context.Background(), order.ID, "ready"); err != nil {
		t.Fatalf("update status error: %v", err)
	}
	if len(orders.StatusUpdates) != 1 || orders.StatusUpdates[0].Status != model.OrderStatusReady {
		t.Fatalf("expected recorded status update, got %+v", orders.StatusUpdates)
	}

	if err := facade.CancelOrder(context.Background(), 7, order.ID); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected cancel rejection after ready, got %v", err)
	}
}

func TestCanteenFacadeWorkerSurface(t *testing.T) {
	facade, _, _, orders := newFacade()

	order, err := facade.PlaceOrder(context.Background(), 7, []model.CartLine{{MenuItemID: 1, Quantity: 1}}, "", "", "")
	if err != nil {
		t.Fatalf("place order error: %v", err)
	}

	// Drop the QR payload so the order shows up in the backfill batch.
	orders.QRCodes[order.ID] = ""
	missing, err := facade.OrdersMissingQRCode(context.Background(), 10)
	if err != nil || len(missing) != 1 {
		t.Fatalf("expected one order missing a code, got %v err=%v", missing, err)
	}

	if err := facade.AttachQRCode(context.Background(), missing[0]); err != nil {
		t.Fatalf("attach error: %v", err)
	}
	if orders.QRCodes[order.ID] == "" {
		t.Fatalf("expected payload recorded for order %d", order.ID)
	}
}

func TestCanteenFacadeAnalytics(t *testing.T) {
	facade, _, _, orders := newFacade()
	orders.TodayStatsFn = func(context.Context) (*model.DayStats, error) {
		return &model.DayStats{TotalOrders: 3, TotalRevenue: 12.0}, nil
	}

	stats, err := facade.TodayStats(context.Background())
	if err != nil || stats.TotalOrders != 3 {
		t.Fatalf("unexpected stats: %v %+v", err, stats)
	}
}
