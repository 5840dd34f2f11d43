package forms

import (
	"regexp"
	"strconv"
	"strings"
)

// personName allows letters plus the space, hyphen and apostrophe found in
// real names.
var personName = regexp.MustCompile(`^[A-Za-z][A-Za-z '-]*$`)

func nameField(name, label string) Field {
	return Field{Name: name, Rules: []Rule{
		{Tag: "required", Message: label + " is required."},
		{Tag: "min=2", Message: label + " must be at least 2 characters."},
		{Fn: personName.MatchString, Message: label + " must contain only letters."},
	}}
}

func emailField() Field {
	return Field{Name: "account_email", Rules: []Rule{
		{Tag: "required", Message: "Email is required."},
		{Tag: "email", Message: "A valid email address is required."},
	}}
}

// passwordField enforces the registration-strength password policy.
func passwordField() Field {
	return Field{Name: "account_password", Rules: []Rule{
		{Tag: "required", Message: "New password is required."},
		{Tag: "min=12", Message: "Password must be at least 12 characters long."},
		{Fn: containsClass("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), Message: "Password must contain at least one uppercase letter."},
		{Fn: containsClass("abcdefghijklmnopqrstuvwxyz"), Message: "Password must contain at least one lowercase letter."},
		{Fn: containsClass("0123456789"), Message: "Password must contain at least one number."},
		{Fn: containsClass(`!@#$%^&*(),.?":{}|<>`), Message: "Password must contain at least one special character."},
	}}
}

func containsClass(chars string) func(string) bool {
	return func(value string) bool { return strings.ContainsAny(value, chars) }
}

// Login validates the login form. The password gets only a presence check
// here; its real verification is the credential comparison.
func Login() []Field {
	return []Field{
		emailField(),
		{Name: "account_password", Rules: []Rule{
			{Tag: "required", Message: "Password is required."},
		}},
	}
}

// Register validates new-account registration.
func Register() []Field {
	return []Field{
		nameField("account_firstname", "First name"),
		nameField("account_lastname", "Last name"),
		emailField(),
		passwordField(),
	}
}

// AccountUpdate validates the profile form. Email uniqueness is a store
// lookup and is appended by the handler.
func AccountUpdate() []Field {
	return []Field{
		nameField("account_firstname", "First name"),
		nameField("account_lastname", "Last name"),
		emailField(),
	}
}

// PasswordUpdate validates the change-password form, at registration
// strength.
func PasswordUpdate() []Field {
	return []Field{passwordField()}
}

// Classification validates the add-classification form.
func Classification() []Field {
	return []Field{
		{Name: "classification_name", Rules: []Rule{
			{Tag: "required", Message: "Classification name is required."},
			{Tag: "alphanum", Message: "Classification name must be letters and numbers only, no spaces."},
		}},
	}
}

// Vehicle validates the add-vehicle form.
func Vehicle() []Field {
	return []Field{
		{Name: "classification_id", Rules: []Rule{
			{Tag: "required", Message: "Classification is required."},
		}},
		{Name: "inv_make", Rules: []Rule{
			{Tag: "min=3", Message: "Make must be at least 3 characters."},
		}},
		{Name: "inv_model", Rules: []Rule{
			{Tag: "min=3", Message: "Model must be at least 3 characters."},
		}},
		{Name: "inv_description", Rules: []Rule{
			{Tag: "required", Message: "Description is required."},
		}},
		{Name: "inv_image", Rules: []Rule{
			{Tag: "required", Message: "Image path is required."},
		}},
		{Name: "inv_thumbnail", Rules: []Rule{
			{Tag: "required", Message: "Thumbnail path is required."},
		}},
		{Name: "inv_price", Rules: []Rule{
			{Fn: positiveNumber, Message: "Price must be a positive number."},
		}},
		{Name: "inv_year", Rules: []Rule{
			{Fn: intBetween(1900, 2100), Message: "Year must be a valid 4-digit year."},
		}},
		{Name: "inv_miles", Rules: []Rule{
			{Fn: nonNegativeInt, Message: "Miles must be a positive integer."},
		}},
		{Name: "inv_color", Rules: []Rule{
			{Tag: "required", Message: "Color is required."},
		}},
	}
}

// TestDrive validates the test-drive request form.
func TestDrive() []Field {
	return []Field{
		{Name: "preferred_date", Rules: []Rule{
			{Tag: "required", Message: "Preferred date is required."},
			{Tag: "datetime=2006-01-02", Message: "Preferred date must be a valid date."},
		}},
		{Name: "preferred_time", Rules: []Rule{
			{Tag: "required", Message: "Preferred time is required."},
		}},
		{Name: "contact_phone", Rules: []Rule{
			{Tag: "required", Message: "Contact phone is required."},
			{Tag: "min=7", Message: "Contact phone seems too short."},
		}},
		{Name: "message", Optional: true, Rules: []Rule{
			{Tag: "max=500", Message: "Message must be 500 characters or less."},
		}},
	}
}

func positiveNumber(value string) bool {
	n, err := strconv.ParseFloat(value, 64)
	return err == nil && n >= 0
}

func nonNegativeInt(value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0
}

func intBetween(min, max int) func(string) bool {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && n >= min && n <= max
	}
}
