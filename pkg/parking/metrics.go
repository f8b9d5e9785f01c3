package parking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Park/unpark outcome labels.
const (
	parkOutcomeParked   = "parked"
	parkOutcomeRejected = "no_bay"

	unparkOutcomeRemoved = "removed"
	unparkOutcomeVacant  = "vacant"
)

// Metrics contains Prometheus collectors for the allocation engine.
type Metrics struct {
	parkTotal   *prometheus.CounterVec
	unparkTotal *prometheus.CounterVec

	parkedCars    prometheus.Gauge
	availableBays prometheus.Gauge
}

// NewMetrics creates collectors registered on the given registerer. A nil
// registerer falls back to the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		parkTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parking_park_attempts_total",
				Help: "Total number of park attempts by outcome",
			},
			[]string{"outcome"},
		),

		unparkTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parking_unpark_attempts_total",
				Help: "Total number of unpark attempts by outcome",
			},
			[]string{"outcome"},
		),

		parkedCars: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "parking_parked_cars",
				Help: "Number of bays currently holding a vehicle",
			},
		),

		availableBays: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "parking_available_bays",
				Help: "General available-capacity count (total minus exits minus parked)",
			},
		),
	}
}
