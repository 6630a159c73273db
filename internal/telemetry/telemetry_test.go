package telemetry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome_Label(t *testing.T) {
	cases := []struct {
		o    Outcome
		want string
	}{
		{Outcome{Found: true}, ResultFound},
		{Outcome{}, ResultNotFound},
		{Outcome{Truncated: true}, ResultTruncated},
		{Outcome{Err: fmt.Errorf("wrap: %w", context.Canceled)}, ResultCanceled},
		{Outcome{Err: context.DeadlineExceeded}, ResultCanceled},
		{Outcome{Err: errors.New("hook failed"), Found: true}, ResultError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.o.label())
	}
}

func TestFinishSearch_CountsOutcome(t *testing.T) {
	counter := searchTotal.WithLabelValues("unit", ResultFound)
	before := testutil.ToFloat64(counter)

	_, span := StartSearch(context.Background(), "unit", "A", "F")
	FinishSearch(span, DiscardLogger(), Outcome{
		Algorithm: "unit",
		Found:     true,
		Expanded:  4,
		PathLen:   3,
		Elapsed:   time.Millisecond,
	})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestObserveInference(t *testing.T) {
	total := testutil.ToFloat64(fuzzyInferenceTotal)
	fallback := testutil.ToFloat64(fuzzyFallbackTotal)

	ObserveInference(false)
	ObserveInference(true)

	assert.Equal(t, total+2, testutil.ToFloat64(fuzzyInferenceTotal))
	assert.Equal(t, fallback+1, testutil.ToFloat64(fuzzyFallbackTotal))
}
