package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nurpe/hr-contracts/internal/model"
)

// Metrics counts contract workflow outcomes.
type Metrics struct {
	Operations           *prometheus.CounterVec
	ChainRejections      *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	ContractsCreated     prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hr_contract_operations_total",
			Help: "Contract workflow operations by outcome",
		}, []string{"operation", "outcome"}),
		ChainRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hr_contract_chain_rejections_total",
			Help: "Requests rejected by a check chain",
		}, []string{"operation", "kind"}),
		NotificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hr_contract_notification_failures_total",
			Help: "Messages that could not be delivered after a contract change",
		}, []string{"type"}),
		ContractsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "hr_contract_contracts_created_total",
			Help: "Contracts created through onboarding or an initial proposal",
		}),
	}
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = Kind(err)
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveRejection(operation string, err error) {
	if m == nil {
		return
	}
	m.ChainRejections.WithLabelValues(operation, Kind(err)).Inc()
}

func (m *Metrics) ObserveNotificationFailure(messageType model.MessageType) {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(string(messageType)).Inc()
}

func (m *Metrics) IncContractsCreated() {
	if m == nil {
		return
	}
	m.ContractsCreated.Inc()
}

// Kind maps an error to a low-cardinality label.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, model.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, model.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrNotDraft):
		return "not_draft"
	case errors.Is(err, model.ErrInvalidContract),
		errors.Is(err, model.ErrMissingCandidateID),
		errors.Is(err, model.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, model.ErrDuplicateIdentity):
		return "duplicate_identity"
	case errors.Is(err, model.ErrDependencyFailed):
		return "dependency_failed"
	default:
		return "internal"
	}
}
