package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ADBranches/cse340/internal/api/middleware"
	"github.com/ADBranches/cse340/internal/core/domain"
)

type stubTestDriveService struct {
	requestFn       func(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error)
	listAllFn       func(ctx context.Context) ([]domain.TestDriveSummary, error)
	listByAccountFn func(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error)
	updateStatusFn  func(ctx context.Context, id int, status string) error
}

func (s *stubTestDriveService) Request(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error) {
	return s.requestFn(ctx, vehicleID, accountID, preferredDate, preferredTime, phone, message)
}

func (s *stubTestDriveService) ListAll(ctx context.Context) ([]domain.TestDriveSummary, error) {
	return s.listAllFn(ctx)
}

func (s *stubTestDriveService) ListByAccount(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error) {
	return s.listByAccountFn(ctx, accountID)
}

func (s *stubTestDriveService) UpdateStatus(ctx context.Context, id int, status string) error {
	return s.updateStatusFn(ctx, id, status)
}

func delorean() *domain.Vehicle {
	return &domain.Vehicle{ID: 5, Make: "DMC", Model: "DeLorean", Year: 1981, Price: 65000}
}

func TestTestDriveHandler_Request_Success(t *testing.T) {
	e := newTestEcho(t)
	base, store := newTestBase()
	stub := &stubTestDriveService{
		requestFn: func(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error) {
			if vehicleID != 5 || accountID != 7 || preferredDate != "2026-09-12" {
				t.Fatalf("unexpected args: %d %d %s", vehicleID, accountID, preferredDate)
			}
			return &domain.TestDriveRequest{ID: 1, VehicleID: vehicleID, AccountID: accountID, Status: domain.TestDrivePending}, nil
		},
	}
	inventory := &stubInventoryService{
		getVehicleFn: func(ctx context.Context, id int) (*domain.Vehicle, error) { return delorean(), nil },
	}
	handler := NewTestDriveHandler(base, stub, inventory)

	c, rec := formRequest(e, "/test-drive/request/5", url.Values{
		"preferred_date": {"2026-09-12"},
		"preferred_time": {"10:30"},
		"contact_phone":  {"0700123456"},
	})
	c.SetParamNames("invID")
	c.SetParamValues("5")
	middleware.SetAccount(c, &domain.SessionAccount{AccountID: 7, FirstName: "Alice", Role: domain.RoleClient})

	if err := handler.Request(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/inv/detail/5" {
		t.Fatalf("expected redirect to vehicle detail, got %q", loc)
	}

	var queued []string
	for _, msgs := range store.messages {
		queued = append(queued, msgs...)
	}
	if len(queued) != 1 || queued[0] != "Your test drive request has been submitted." {
		t.Fatalf("unexpected notices: %v", queued)
	}
}

func TestTestDriveHandler_Request_ValidationKeepsValues(t *testing.T) {
	e := newTestEcho(t)
	base, _ := newTestBase()
	stub := &stubTestDriveService{
		requestFn: func(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error) {
			t.Fatalf("service must not run on validation failure")
			return nil, nil
		},
	}
	inventory := &stubInventoryService{
		getVehicleFn: func(ctx context.Context, id int) (*domain.Vehicle, error) { return delorean(), nil },
	}
	handler := NewTestDriveHandler(base, stub, inventory)

	c, rec := formRequest(e, "/test-drive/request/5", url.Values{
		"preferred_date": {"not-a-date"},
		"preferred_time": {"10:30"},
		"contact_phone":  {"0700123456"},
		"message":        {"Weekend if possible."},
	})
	c.SetParamNames("invID")
	c.SetParamValues("5")
	middleware.SetAccount(c, &domain.SessionAccount{AccountID: 7, FirstName: "Alice", Role: domain.RoleClient})

	if err := handler.Request(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Preferred date must be a valid date.") {
		t.Fatalf("expected date error, got: %s", body)
	}
	if !strings.Contains(body, `value="not-a-date"`) {
		t.Fatalf("expected sticky date value")
	}
	if !strings.Contains(body, "Weekend if possible.") {
		t.Fatalf("expected sticky message value")
	}
	if !strings.Contains(body, "DeLorean") {
		t.Fatalf("expected vehicle summary on re-render")
	}
}

func TestTestDriveHandler_UpdateStatus_Invalid(t *testing.T) {
	e := newTestEcho(t)
	base, store := newTestBase()
	stub := &stubTestDriveService{
		updateStatusFn: func(ctx context.Context, id int, status string) error {
			return domain.ErrInvalidStatus
		},
	}
	handler := NewTestDriveHandler(base, stub, &stubInventoryService{})

	c, rec := formRequest(e, "/test-drive/update-status", url.Values{
		"testdrive_id": {"1"},
		"status":       {"Teleported"},
	})

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/test-drive/manage" {
		t.Fatalf("expected redirect to management, got %q", loc)
	}

	var queued []string
	for _, msgs := range store.messages {
		queued = append(queued, msgs...)
	}
	if len(queued) != 1 || queued[0] != "Could not update test drive status." {
		t.Fatalf("unexpected notices: %v", queued)
	}
}

func TestTestDriveHandler_History(t *testing.T) {
	e := newTestEcho(t)
	base, _ := newTestBase()
	stub := &stubTestDriveService{
		listByAccountFn: func(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error) {
			if accountID != 7 {
				t.Fatalf("unexpected account id: %d", accountID)
			}
			return []domain.TestDriveSummary{{
				TestDriveRequest: domain.TestDriveRequest{ID: 1, Status: domain.TestDriveConfirmed},
				VehicleMake:      "DMC",
				VehicleModel:     "DeLorean",
				VehicleYear:      1981,
			}}, nil
		},
	}
	handler := NewTestDriveHandler(base, stub, &stubInventoryService{})

	c, rec := getRequest(e, "/test-drive/history", "", "")
	middleware.SetAccount(c, &domain.SessionAccount{AccountID: 7, FirstName: "Alice", Role: domain.RoleClient})

	if err := handler.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "DeLorean") || !strings.Contains(body, domain.TestDriveConfirmed) {
		t.Fatalf("expected request row in history, got: %s", body)
	}
}
