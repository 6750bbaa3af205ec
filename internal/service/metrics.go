package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"fitclub-admin/internal/domain"
)

var opsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "fitclub_operations_total", Help: "Domain operations by name and outcome"},
	[]string{"op", "outcome"},
)

func init() { prometheus.MustRegister(opsTotal) }

func observe(op string, err error) {
	opsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrAuthFailure):
		return "auth_failure"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrAlreadyRegistered):
		return "conflict"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
