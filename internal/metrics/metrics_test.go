package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/nurpe/hr-contracts/internal/model"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "none", Kind(nil))
	assert.Equal(t, "not_found", Kind(fmt.Errorf("load: %w", model.ErrNotFound)))
	assert.Equal(t, "invalid", Kind(model.Fail(model.ErrMissingCandidateID, "no candidate ID")))
	assert.Equal(t, "dependency_failed", Kind(model.ErrNotificationFailed))
	assert.Equal(t, "internal", Kind(errors.New("boom")))
}

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOperation("propose", nil)
	m.ObserveOperation("propose", model.ErrNotDraft)
	m.ObserveRejection("accept", model.ErrNotAuthenticated)
	m.ObserveNotificationFailure(model.MessageContractPropose)
	m.IncContractsCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("propose", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("propose", "not_draft")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChainRejections.WithLabelValues("accept", "not_authenticated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("contract-propose")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContractsCreated))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("accept", nil)
		m.IncContractsCreated()
	})
}
