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

// AccountHandler serves registration, login/logout and account management.
type AccountHandler struct {
	Base
	accounts ports.AccountService
}

func NewAccountHandler(base Base, accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{Base: base, accounts: accounts}
}

// LoginPage renders the login form.
func (h *AccountHandler) LoginPage(c echo.Context) error {
	return h.Render(c, http.StatusOK, "account/login", echo.Map{
		"Title": "Login",
		"Email": "",
	})
}

// Login processes the login form: validate, verify credentials, mint the
// session cookie. Failures re-render the form with the email kept sticky;
// the password is never echoed back.
func (h *AccountHandler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("account_email"))

	if errs := forms.Check(c.FormValue, forms.Login()); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("login").Inc()
		return h.Render(c, http.StatusBadRequest, "account/login", echo.Map{
			"Title":  "Login",
			"Errors": errs,
			"Email":  email,
		})
	}

	token, _, err := h.accounts.Login(c.Request().Context(), email, c.FormValue("account_password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return h.Render(c, http.StatusBadRequest, "account/login", echo.Map{
				"Title":  "Login",
				"Errors": []forms.FieldError{{Field: "account_email", Message: "Invalid email or password."}},
				"Email":  email,
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.SetSessionCookie(c, token)
	return h.RedirectWithNotice(c, "You are now logged in.", "/account")
}

// Logout clears the session cookie and returns to the home page.
func (h *AccountHandler) Logout(c echo.Context) error {
	h.ClearSessionCookie(c)
	return h.RedirectWithNotice(c, "You have been logged out.", "/")
}

// RegisterPage renders the registration form.
func (h *AccountHandler) RegisterPage(c echo.Context) error {
	return h.Render(c, http.StatusOK, "account/register", echo.Map{
		"Title":     "Register",
		"FirstName": "",
		"LastName":  "",
		"Email":     "",
	})
}

// Register processes new-account registration.
func (h *AccountHandler) Register(c echo.Context) error {
	firstName := strings.TrimSpace(c.FormValue("account_firstname"))
	lastName := strings.TrimSpace(c.FormValue("account_lastname"))
	email := strings.TrimSpace(c.FormValue("account_email"))

	errs := forms.Check(c.FormValue, forms.Register())

	if email != "" {
		inUse, err := h.accounts.EmailInUse(c.Request().Context(), email, 0)
		if err != nil {
			return err
		}
		if inUse {
			errs = append(errs, forms.FieldError{Field: "account_email", Message: "An account with that email already exists."})
		}
	}

	if len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("register").Inc()
		return h.Render(c, http.StatusBadRequest, "account/register", echo.Map{
			"Title":     "Register",
			"Errors":    errs,
			"FirstName": firstName,
			"LastName":  lastName,
			"Email":     email,
		})
	}

	account, err := h.accounts.Register(c.Request().Context(), firstName, lastName, email, c.FormValue("account_password"))
	if err != nil {
		return err
	}

	return h.RedirectWithNotice(c,
		"Congratulations, you're registered, "+account.FirstName+". Please log in.",
		"/account/login")
}

// Management renders the account management home for the logged-in user.
func (h *AccountHandler) Management(c echo.Context) error {
	account, _ := middleware.Account(c)

	detail, err := h.accounts.GetAccount(c.Request().Context(), account.AccountID)
	if err != nil {
		return err
	}

	return h.Render(c, http.StatusOK, "account/management", echo.Map{
		"Title":  "Account Management",
		"Detail": detail,
	})
}

// EditPage renders the account update form for the given account id.
func (h *AccountHandler) EditPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("accountID"))
	if err != nil {
		return h.RedirectWithNotice(c, "Invalid account id.", "/account")
	}

	detail, err := h.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return h.RedirectWithNotice(c, "Account not found.", "/account")
		}
		return err
	}

	return h.Render(c, http.StatusOK, "account/update", echo.Map{
		"Title":     "Edit Account",
		"AccountID": detail.ID,
		"FirstName": detail.FirstName,
		"LastName":  detail.LastName,
		"Email":     detail.Email,
	})
}

// Update processes the profile form. On success the session token is
// re-issued and the request context refreshed so this response already shows
// the new first name.
func (h *AccountHandler) Update(c echo.Context) error {
	accountID, _ := strconv.Atoi(c.FormValue("account_id"))
	firstName := strings.TrimSpace(c.FormValue("account_firstname"))
	lastName := strings.TrimSpace(c.FormValue("account_lastname"))
	email := strings.TrimSpace(c.FormValue("account_email"))

	errs := forms.Check(c.FormValue, forms.AccountUpdate())

	if email != "" {
		inUse, err := h.accounts.EmailInUse(c.Request().Context(), email, accountID)
		if err != nil {
			return err
		}
		if inUse {
			errs = append(errs, forms.FieldError{Field: "account_email", Message: "An account with that email already exists."})
		}
	}

	if len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("account_update").Inc()
		return h.Render(c, http.StatusBadRequest, "account/update", echo.Map{
			"Title":     "Edit Account",
			"Errors":    errs,
			"AccountID": accountID,
			"FirstName": firstName,
			"LastName":  lastName,
			"Email":     email,
		})
	}

	token, updated, err := h.accounts.UpdateAccount(c.Request().Context(), accountID, firstName, lastName, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return h.RedirectWithNotice(c, "Sorry, your account could not be updated.", "/account/edit/"+strconv.Itoa(accountID))
		}
		return err
	}

	h.SetSessionCookie(c, token)
	middleware.SetAccount(c, &domain.SessionAccount{
		AccountID: updated.ID,
		FirstName: updated.FirstName,
		Role:      updated.Role,
	})

	h.Notices.Notify(c, "Account information updated successfully.")
	return h.Render(c, http.StatusOK, "account/management", echo.Map{
		"Title":  "Account Management",
		"Detail": updated,
	})
}

// UpdatePassword processes the change-password form. On validation failure
// the edit view is re-rendered with the account's stored fields; the
// submitted password never appears in any render path.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	accountID, _ := strconv.Atoi(c.FormValue("account_id"))

	if errs := forms.Check(c.FormValue, forms.PasswordUpdate()); len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues("password_update").Inc()

		detail, err := h.accounts.GetAccount(c.Request().Context(), accountID)
		if err != nil {
			return err
		}
		return h.Render(c, http.StatusBadRequest, "account/update", echo.Map{
			"Title":     "Edit Account",
			"Errors":    errs,
			"AccountID": detail.ID,
			"FirstName": detail.FirstName,
			"LastName":  detail.LastName,
			"Email":     detail.Email,
		})
	}

	if err := h.accounts.UpdatePassword(c.Request().Context(), accountID, c.FormValue("account_password")); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			h.Notices.Notify(c, "Sorry, your password could not be updated.")
		} else {
			return err
		}
	} else {
		h.Notices.Notify(c, "Password updated successfully.")
	}

	detail, err := h.accounts.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	middleware.SetAccount(c, &domain.SessionAccount{
		AccountID: detail.ID,
		FirstName: detail.FirstName,
		Role:      detail.Role,
	})

	return h.Render(c, http.StatusOK, "account/management", echo.Map{
		"Title":  "Account Management",
		"Detail": detail,
	})
}
