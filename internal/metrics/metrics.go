package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for the application
type Metrics struct {
	UsersRegistered   prometheus.Counter
	RequestsCreated   prometheus.Counter
	DonationsRecorded prometheus.Counter
}

// New creates and registers all counters against the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_users_registered_total",
			Help: "Total number of users registered",
		}),
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_blood_requests_created_total",
			Help: "Total number of blood requests created",
		}),
		DonationsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_donations_recorded_total",
			Help: "Total number of donations recorded",
		}),
	}
}
