package domain

import "time"

// Test-drive request statuses.
const (
	TestDrivePending   = "Pending"
	TestDriveConfirmed = "Confirmed"
	TestDriveCompleted = "Completed"
	TestDriveCancelled = "Cancelled"
)

// ValidTestDriveStatus reports whether s is one of the known statuses.
func ValidTestDriveStatus(s string) bool {
	switch s {
	case TestDrivePending, TestDriveConfirmed, TestDriveCompleted, TestDriveCancelled:
		return true
	}
	return false
}

// TestDriveRequest is a customer's request to test drive a vehicle.
type TestDriveRequest struct {
	ID            int       `json:"testdrive_id"`
	VehicleID     int       `json:"inv_id"`
	AccountID     int       `json:"account_id"`
	PreferredDate time.Time `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	ContactPhone  string    `json:"contact_phone"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TestDriveSummary is a request joined with vehicle and account display
// fields for the history and management views.
type TestDriveSummary struct {
	TestDriveRequest
	VehicleMake  string `json:"inv_make"`
	VehicleModel string `json:"inv_model"`
	VehicleYear  int    `json:"inv_year"`
	VehicleImage string `json:"inv_image"`
	FirstName    string `json:"account_firstname,omitempty"`
	LastName     string `json:"account_lastname,omitempty"`
	Email        string `json:"account_email,omitempty"`
}
