// Package metrics defines and registers all custom Prometheus metrics for the
// real-estate API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realestate"

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

// PropertySearchesTotal counts property list queries that completed
// successfully.
var PropertySearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_searches_total",
		Help:      "Total number of property search queries served.",
	},
)

// ListingsCreatedTotal counts catalog entities created through the API.
// Label:
//   - entity: "property", "compound", "developer" or "booking"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of catalog entities created, by entity kind.",
	},
	[]string{"entity"},
)

// PolicyDenialsTotal counts requests rejected by the menu-item policy guard.
// Label:
//   - reason: "no_policy" (no policy for the caller's role) or
//     "not_permitted" (policy exists but excludes the menu item)
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of requests denied by the role policy guard.",
	},
	[]string{"reason"},
)
