package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const SuccessLabel = "success"
const FailLabel = "fail"

func IncCounterVecWithLabelValues(counter *prometheus.CounterVec, name string, err error) {
	label := SuccessLabel
	if err != nil {
		label = FailLabel
	}
	counter.WithLabelValues(name, label).Inc()
}

// ObserveDuration records how long f takes in microseconds.
func ObserveDuration[T any](f func() (T, error), observer prometheus.Observer) func() (T, error) {
	return func() (T, error) {
		startAt := time.Now()
		res, err := f()
		elapsed := time.Since(startAt)
		observer.Observe(float64(elapsed.Microseconds()))
		return res, err
	}
}
