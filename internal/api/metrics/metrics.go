// Package metrics defines and registers the custom Prometheus metrics for
// the CSE Motors web application. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "csemotors"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ValidationFailuresTotal counts form submissions rejected by validation.
// Label:
//   - form: the form identifier (e.g. "login", "account_update", "vehicle_add")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected by field validation.",
	},
	[]string{"form"},
)

// TestDriveRequestsTotal counts successfully submitted test-drive requests.
var TestDriveRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "testdrive_requests_total",
		Help:      "Total number of test drive requests submitted.",
	},
)

// VehiclesAddedTotal counts vehicles added through the management form.
var VehiclesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicles_added_total",
		Help:      "Total number of vehicles added to the inventory.",
	},
)
