package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ADBranches/cse340/internal/api/forms"
	"github.com/ADBranches/cse340/internal/api/metrics"
	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// InventoryHandler serves vehicle browsing and staff inventory management.
type InventoryHandler struct {
	Base
	inventory ports.InventoryService
}

func NewInventoryHandler(base Base, inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{Base: base, inventory: inventory}
}

// Home renders the landing page.
func (h *InventoryHandler) Home(c echo.Context) error {
	return h.Render(c, http.StatusOK, "index", echo.Map{
		"Title": "CSE Motors",
	})
}

// Classification renders all vehicles of one classification.
func (h *InventoryHandler) Classification(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("classificationID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid classification id.")
	}

	classification, vehicles, err := h.inventory.ListByClassification(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No vehicles found for this classification.")
	}

	return h.Render(c, http.StatusOK, "inventory/classification", echo.Map{
		"Title":    classification.Name + " vehicles",
		"Vehicles": vehicles,
	})
}

// Detail renders a single vehicle.
func (h *InventoryHandler) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("invID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid vehicle id.")
	}

	vehicle, err := h.inventory.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "inventory/detail", echo.Map{
		"Title":   vehicle.Make + " " + vehicle.Model,
		"Vehicle": vehicle,
	})
}

// Management renders the staff inventory management home.
func (h *InventoryHandler) Management(c echo.Context) error {
	return h.Render(c, http.StatusOK, "inventory/management", echo.Map{
		"Title": "Vehicle Management",
	})
}

// AddClassificationPage renders the add-classification form.
func (h *InventoryHandler) AddClassificationPage(c echo.Context) error {
	return h.Render(c, http.StatusOK, "inventory/add-classification", echo.Map{
		"Title":              "Add New Classification",
		"ClassificationName": "",
	})
}

// AddClassification processes the add-classification form.
func (h *InventoryHandler) AddClassification(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("classification_name"))

	if errs := forms.Check(c.FormValue, forms.Classification()); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("classification_add").Inc()
		return h.Render(c, http.StatusBadRequest, "inventory/add-classification", echo.Map{
			"Title":              "Add New Classification",
			"Errors":             errs,
			"ClassificationName": name,
		})
	}

	if _, err := h.inventory.AddClassification(c.Request().Context(), name); err != nil {
		if errors.Is(err, domain.ErrClassificationExists) {
			return h.Render(c, http.StatusBadRequest, "inventory/add-classification", echo.Map{
				"Title":              "Add New Classification",
				"Errors":             []forms.FieldError{{Field: "classification_name", Message: "That classification already exists."}},
				"ClassificationName": name,
			})
		}
		h.Notices.Notify(c, "Sorry, the classification could not be added.")
		return h.Render(c, http.StatusInternalServerError, "inventory/add-classification", echo.Map{
			"Title":              "Add New Classification",
			"ClassificationName": name,
		})
	}

	return h.RedirectWithNotice(c, "The new classification was successfully added.", "/inv")
}

// AddVehiclePage renders the add-vehicle form with the classification picker.
func (h *InventoryHandler) AddVehiclePage(c echo.Context) error {
	classifications, err := h.inventory.ListClassifications(c.Request().Context())
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "inventory/add-inventory", echo.Map{
		"Title":           "Add New Vehicle",
		"Classifications": classifications,
		"Values":          map[string]string{},
	})
}

// vehicleFormValues captures every submitted field so a failed validation
// can echo the form back verbatim.
func vehicleFormValues(c echo.Context) map[string]string {
	values := make(map[string]string)
	for _, name := range []string{
		"classification_id", "inv_make", "inv_model", "inv_description",
		"inv_image", "inv_thumbnail", "inv_price", "inv_year", "inv_miles", "inv_color",
	} {
		values[name] = strings.TrimSpace(c.FormValue(name))
	}
	return values
}

// AddVehicle processes the add-vehicle form. The failure re-render rebuilds
// the classification picker with the user's previous choice still selected.
func (h *InventoryHandler) AddVehicle(c echo.Context) error {
	values := vehicleFormValues(c)

	if errs := forms.Check(c.FormValue, forms.Vehicle()); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("vehicle_add").Inc()

		classifications, err := h.inventory.ListClassifications(c.Request().Context())
		if err != nil {
			return err
		}
		return h.Render(c, http.StatusBadRequest, "inventory/add-inventory", echo.Map{
			"Title":           "Add New Vehicle",
			"Errors":          errs,
			"Classifications": classifications,
			"Values":          values,
		})
	}

	classificationID, _ := strconv.Atoi(values["classification_id"])
	price, _ := strconv.ParseFloat(values["inv_price"], 64)
	year, _ := strconv.Atoi(values["inv_year"])
	miles, _ := strconv.Atoi(values["inv_miles"])

	_, err := h.inventory.AddVehicle(c.Request().Context(), &domain.Vehicle{
		ClassificationID: classificationID,
		Make:             values["inv_make"],
		Model:            values["inv_model"],
		Description:      values["inv_description"],
		Image:            values["inv_image"],
		Thumbnail:        values["inv_thumbnail"],
		Price:            price,
		Year:             year,
		Miles:            miles,
		Color:            values["inv_color"],
	})
	if err != nil {
		h.Notices.Notify(c, "Sorry, the vehicle could not be added.")
		classifications, lerr := h.inventory.ListClassifications(c.Request().Context())
		if lerr != nil {
			return lerr
		}
		return h.Render(c, http.StatusInternalServerError, "inventory/add-inventory", echo.Map{
			"Title":           "Add New Vehicle",
			"Classifications": classifications,
			"Values":          values,
		})
	}

	metrics.VehiclesAddedTotal.Inc()
	return h.RedirectWithNotice(c, "The new vehicle was successfully added.", "/inv")
}
