package esp

import "github.com/prometheus/client_golang/prometheus"

const (
	operationValidate = "validate_connection"
	operationLists    = "get_lists"
	operationStats    = "campaign_statistics"

	outcomeSuccess = "success"
)

type Metrics struct {
	Requests *prometheus.CounterVec
}

// NewMetrics creates the ESP request counter and registers it with reg when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esp_requests_total",
			Help: "Outbound ESP API calls by provider, operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests)
	}
	return m
}

func (m *Metrics) observe(provider string, operation string, err *Error) {
	if m == nil || m.Requests == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = string(err.Kind)
	}
	m.Requests.WithLabelValues(provider, operation, outcome).Inc()
}
