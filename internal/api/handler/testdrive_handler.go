package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ADBranches/cse340/internal/api/forms"
	"github.com/ADBranches/cse340/internal/api/metrics"
	"github.com/ADBranches/cse340/internal/api/middleware"
	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// TestDriveHandler serves test-drive request submission and management.
type TestDriveHandler struct {
	Base
	testDrives ports.TestDriveService
	inventory  ports.InventoryService
}

func NewTestDriveHandler(base Base, testDrives ports.TestDriveService, inventory ports.InventoryService) *TestDriveHandler {
	return &TestDriveHandler{Base: base, testDrives: testDrives, inventory: inventory}
}

func testDriveTitle(vehicle *domain.Vehicle) string {
	if vehicle == nil {
		return "Request Test Drive"
	}
	return "Request Test Drive – " + strconv.Itoa(vehicle.Year) + " " + vehicle.Make + " " + vehicle.Model
}

func testDriveFormValues(c echo.Context) map[string]string {
	values := make(map[string]string)
	for _, name := range []string{"preferred_date", "preferred_time", "contact_phone", "message"} {
		values[name] = strings.TrimSpace(c.FormValue(name))
	}
	return values
}

// RequestPage renders the test-drive form for one vehicle.
func (h *TestDriveHandler) RequestPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("invID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid vehicle id for test drive.")
	}

	vehicle, err := h.inventory.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "testdrive/request", echo.Map{
		"Title":   testDriveTitle(vehicle),
		"Vehicle": vehicle,
		"Values":  map[string]string{},
	})
}

// Request processes a test-drive submission. Validation failures re-render
// the form with the vehicle re-fetched and every field kept sticky.
func (h *TestDriveHandler) Request(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("invID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid vehicle id for test drive.")
	}

	values := testDriveFormValues(c)

	if errs := forms.Check(c.FormValue, forms.TestDrive()); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("testdrive_request").Inc()

		vehicle, verr := h.inventory.GetVehicle(c.Request().Context(), id)
		if verr != nil && !errors.Is(verr, domain.ErrVehicleNotFound) {
			return verr
		}
		return h.Render(c, http.StatusBadRequest, "testdrive/request", echo.Map{
			"Title":   testDriveTitle(vehicle),
			"Errors":  errs,
			"Vehicle": vehicle,
			"Values":  values,
		})
	}

	account, _ := middleware.Account(c)

	_, err = h.testDrives.Request(c.Request().Context(), id, account.AccountID,
		values["preferred_date"], values["preferred_time"], values["contact_phone"], values["message"])
	if err != nil {
		return err
	}

	metrics.TestDriveRequestsTotal.Inc()
	return h.RedirectWithNotice(c, "Your test drive request has been submitted.", "/inv/detail/"+strconv.Itoa(id))
}

// History renders the logged-in user's own requests.
func (h *TestDriveHandler) History(c echo.Context) error {
	account, _ := middleware.Account(c)

	requests, err := h.testDrives.ListByAccount(c.Request().Context(), account.AccountID)
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "testdrive/history", echo.Map{
		"Title":    "My Test Drive Requests",
		"Requests": requests,
	})
}

// Management renders all requests for staff.
func (h *TestDriveHandler) Management(c echo.Context) error {
	requests, err := h.testDrives.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "testdrive/management", echo.Map{
		"Title":    "Test Drive Requests",
		"Requests": requests,
	})
}

// UpdateStatus moves one request to a new status and returns to the
// management view.
func (h *TestDriveHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.FormValue("testdrive_id"))
	if err != nil {
		return h.RedirectWithNotice(c, "Could not update test drive status.", "/test-drive/manage")
	}

	if err := h.testDrives.UpdateStatus(c.Request().Context(), id, c.FormValue("status")); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) || errors.Is(err, domain.ErrTestDriveNotFound) {
			return h.RedirectWithNotice(c, "Could not update test drive status.", "/test-drive/manage")
		}
		return err
	}

	return h.RedirectWithNotice(c, "Test drive status updated.", "/test-drive/manage")
}
