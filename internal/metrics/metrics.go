package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for availability lookups and
// ticket creation.
type SchedulingMetrics struct {
	availabilityTotal  *prometheus.CounterVec
	availableDates     prometheus.Histogram
	ticketsTotal       *prometheus.CounterVec
	ticketVendorsCount prometheus.Histogram
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dockmate",
			Subsystem: "availability",
			Name:      "queries_total",
			Help:      "Total availability lookups by outcome",
		}, []string{"result"}),
		availableDates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dockmate",
			Subsystem: "availability",
			Name:      "dates_returned",
			Help:      "Number of qualifying dates per availability lookup",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 30, 60, 90},
		}),
		ticketsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dockmate",
			Subsystem: "tickets",
			Name:      "created_total",
			Help:      "Ticket creation attempts by outcome",
		}, []string{"status"}),
		ticketVendorsCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dockmate",
			Subsystem: "tickets",
			Name:      "vendors_per_ticket",
			Help:      "Number of vendors on each created ticket",
			Buckets:   []float64{1, 2, 3, 4, 5, 8},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.availableDates, m.ticketsTotal, m.ticketVendorsCount)
	return m
}

// ObserveAvailability records one lookup. An empty result is labelled
// "empty" rather than treated as an error.
func (m *SchedulingMetrics) ObserveAvailability(dates int, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.availabilityTotal.WithLabelValues("error").Inc()
		return
	case dates == 0:
		m.availabilityTotal.WithLabelValues("empty").Inc()
	default:
		m.availabilityTotal.WithLabelValues("ok").Inc()
	}
	m.availableDates.Observe(float64(dates))
}

func (m *SchedulingMetrics) ObserveTicketCreated(vendors int) {
	if m == nil {
		return
	}
	m.ticketsTotal.WithLabelValues("created").Inc()
	m.ticketVendorsCount.Observe(float64(vendors))
}

func (m *SchedulingMetrics) ObserveTicketRejected() {
	if m == nil {
		return
	}
	m.ticketsTotal.WithLabelValues("rejected").Inc()
}
