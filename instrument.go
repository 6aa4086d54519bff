package threadgroup

import (
	"context"
	"errors"
	"time"

	"github.com/go-kit/kit/metrics/discard"
)

// Adder represents a metric to which deltas can be added.  Go-kit's
// metrics.Counter, metrics.Gauge, and several prometheus interfaces implement
// this interface.
type Adder interface {
	Add(float64)
}

// InstrumentOption represents a configurable option for instrumenting a thread group
type InstrumentOption func(*instrumentMetrics)

// WithSpawned establishes a metric that counts tasks successfully spawned into
// the group.  If a nil adder is supplied, spawn counts are discarded.
func WithSpawned(a Adder) InstrumentOption {
	return func(im *instrumentMetrics) {
		if a != nil {
			im.spawned = a
		} else {
			im.spawned = discard.NewCounter()
		}
	}
}

// WithFailures establishes a metric that counts abnormal task terminations and
// failed spawn attempts.  If a nil adder is supplied, failure counts are discarded.
func WithFailures(a Adder) InstrumentOption {
	return func(im *instrumentMetrics) {
		if a != nil {
			im.failures = a
		} else {
			im.failures = discard.NewCounter()
		}
	}
}

// WithPending establishes a metric that tracks the group's pending task count.
// It receives a positive delta on each spawn and a negative delta as joins
// consume handles.  If a nil adder is supplied, pending counts are discarded.
func WithPending(a Adder) InstrumentOption {
	return func(im *instrumentMetrics) {
		if a != nil {
			im.pending = a
		} else {
			im.pending = discard.NewGauge()
		}
	}
}

// Instrument decorates an existing thread group with a set of options.
// The decorated group has the same single-owner semantics as the original.
func Instrument[T any](g Interface[T], o ...InstrumentOption) Interface[T] {
	if g == nil {
		panic("A thread group to decorate is required")
	}

	ig := &instrumentedGroup[T]{
		Interface: g,
		m: instrumentMetrics{
			spawned:  discard.NewCounter(),
			failures: discard.NewCounter(),
			pending:  discard.NewGauge(),
		},
	}

	for _, f := range o {
		f(&ig.m)
	}

	return ig
}

type instrumentMetrics struct {
	spawned  Adder
	failures Adder
	pending  Adder
}

type instrumentedGroup[T any] struct {
	Interface[T]
	m instrumentMetrics
}

func (ig *instrumentedGroup[T]) Spawn(task Task[T]) (err error) {
	err = ig.Interface.Spawn(task)
	if err != nil {
		ig.m.failures.Add(1.0)
	} else {
		ig.m.spawned.Add(1.0)
		ig.m.pending.Add(1.0)
	}

	return
}

func (ig *instrumentedGroup[T]) Join() (T, error) {
	v, err := ig.Interface.Join()
	if errors.Is(err, ErrNoTasks) {
		return v, err
	}

	ig.m.pending.Add(-1.0)
	if err != nil {
		ig.m.failures.Add(1.0)
	}

	return v, err
}

func (ig *instrumentedGroup[T]) JoinAll() AggregateResult[T] {
	results := ig.Interface.JoinAll()
	ig.record(results)
	return results
}

func (ig *instrumentedGroup[T]) JoinAllWait(t <-chan time.Time) (AggregateResult[T], error) {
	results, err := ig.Interface.JoinAllWait(t)
	ig.record(results)
	return results, err
}

func (ig *instrumentedGroup[T]) JoinAllCtx(ctx context.Context) (AggregateResult[T], error) {
	results, err := ig.Interface.JoinAllCtx(ctx)
	ig.record(results)
	return results, err
}

func (ig *instrumentedGroup[T]) JoinAllOK() ([]T, error) {
	before := ig.Pending()
	values, err := ig.Interface.JoinAllOK()

	ig.m.pending.Add(-float64(before - ig.Pending()))
	if err != nil {
		ig.m.failures.Add(1.0)
	}

	return values, err
}

func (ig *instrumentedGroup[T]) JoinSuccessful() []T {
	before := ig.Pending()
	values := ig.Interface.JoinSuccessful()

	consumed := before - ig.Pending()
	ig.m.pending.Add(-float64(consumed))
	ig.m.failures.Add(float64(consumed - len(values)))

	return values
}

func (ig *instrumentedGroup[T]) record(results AggregateResult[T]) {
	ig.m.pending.Add(-float64(len(results)))

	failed := 0
	for _, o := range results {
		if o.Failed() {
			failed++
		}
	}

	ig.m.failures.Add(float64(failed))
}
