// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Task is a unit of work with no required input.  It terminates either by
// returning normally, with a value, or abnormally, with an error or a panic.
// A task must not assume any scheduling order relative to other tasks in the
// same group.
type Task[T any] func() (T, error)

// Interface represents a thread group.  Every task spawned into a group is
// eventually consumed by exactly one join method, which blocks until that
// task's flow of control has terminated.
//
// A group alternates between two phases, accepting spawns and draining
// through joins, and may cycle between them indefinitely.
type Interface[T any] interface {
	// ID returns the identifier that prefixes the names of tasks spawned
	// into this group.
	ID() string

	// Pending returns the count of spawned tasks not yet consumed by a join.
	Pending() int

	// Spawn starts the task immediately on its own flow of control and
	// appends its handle to the group in call order.  Spawn does not wait
	// for the task to begin producing output.
	//
	// If the underlying Starter cannot create the flow of control, Spawn
	// returns a *SpawnError and the group is left unmodified.
	Spawn(Task[T]) error

	// Join consumes the oldest pending handle, blocking until that task has
	// terminated, and returns its value and error.  ErrNoTasks is returned
	// when the group is empty.
	Join() (T, error)

	// JoinAll blocks until every pending task has terminated and returns
	// their outcomes in spawn order, regardless of completion order.  A
	// failing task never aborts the join of the rest: every task's outcome
	// is present in the result, and JoinAll itself cannot fail.
	//
	// On return the group is empty and may be reused for a new round of
	// spawning.  An empty group yields an empty result without blocking.
	JoinAll() AggregateResult[T]

	// JoinAllWait behaves as JoinAll until the given time channel becomes
	// signaled, at which point it stops waiting and returns the outcomes
	// consumed so far along with ErrJoinTimeout.  Tasks not yet consumed
	// remain pending in the group and keep running; a later join round
	// picks them up.
	JoinAllWait(<-chan time.Time) (AggregateResult[T], error)

	// JoinAllCtx behaves as JoinAll until the given context is canceled, at
	// which point it stops waiting and returns the outcomes consumed so far
	// along with ctx.Err().  Tasks not yet consumed remain pending in the
	// group and keep running.
	JoinAllCtx(context.Context) (AggregateResult[T], error)

	// JoinAllOK consumes pending handles in spawn order, collecting values,
	// and stops at the first abnormal termination, returning its error.
	// Handles after the failing one remain pending.
	JoinAllOK() ([]T, error)

	// JoinSuccessful blocks until every pending task has terminated and
	// returns only the successful values, in spawn order, discarding
	// failures.  The discarded failures remain visible through Failures.
	JoinSuccessful() []T

	// Failures returns a copy of the abnormal terminations consumed by this
	// group so far, keyed by task name.  The map accumulates across join
	// rounds.
	Failures() map[string]error
}

// New constructs an empty thread group.  By default the group carries a
// generated ksuid id, logs through the default sallust logger, and starts
// tasks on plain goroutines.
func New[T any](options ...Option) Interface[T] {
	s := defaultSettings()
	for _, o := range options {
		o(&s)
	}

	return &group[T]{
		id:       s.id,
		logger:   s.logger,
		starter:  s.starter,
		failures: make(map[string]error),
	}
}

// group is the internal Interface implementation
type group[T any] struct {
	id      string
	logger  *zap.Logger
	starter Starter

	// handles holds the pending tasks in spawn order.  Each handle is
	// relinquished exactly once, to the join method that consumes it.
	handles []*handle[T]

	// spawned counts every task ever spawned into this group, so task
	// names stay unique across join rounds
	spawned int

	failures map[string]error
}

// handle is the exclusive ownership token for one running task
type handle[T any] struct {
	name string

	// done is closed after outcome is fully written, which gives the
	// joining goroutine visibility of the outcome
	done    chan struct{}
	outcome Outcome[T]
}

func (g *group[T]) ID() string {
	return g.id
}

func (g *group[T]) Pending() int {
	return len(g.handles)
}

func (g *group[T]) Spawn(task Task[T]) error {
	h := &handle[T]{
		name: fmt.Sprintf("%s:%d", g.id, g.spawned+1),
		done: make(chan struct{}),
	}

	h.outcome.Name = h.name

	run := func() {
		defer close(h.done)
		defer func() {
			if v := recover(); v != nil {
				h.outcome.Err = newPanicError(v)
			}
		}()

		h.outcome.Value, h.outcome.Err = task()
	}

	if err := g.starter.Start(run); err != nil {
		return &SpawnError{Name: h.name, Err: err}
	}

	g.spawned++
	g.handles = append(g.handles, h)
	g.logger.Debug("task spawned",
		zap.String("group", g.id),
		zap.String("task", h.name),
	)

	return nil
}

func (g *group[T]) Join() (T, error) {
	if len(g.handles) == 0 {
		var zero T
		return zero, ErrNoTasks
	}

	o := g.consume(g.pop())
	return o.Value, o.Err
}

func (g *group[T]) JoinAll() AggregateResult[T] {
	results := make(AggregateResult[T], 0, len(g.handles))
	for len(g.handles) > 0 {
		results = append(results, g.consume(g.pop()))
	}

	g.logger.Debug("group drained",
		zap.String("group", g.id),
		zap.Int("tasks", len(results)),
	)

	return results
}

func (g *group[T]) JoinAllWait(t <-chan time.Time) (AggregateResult[T], error) {
	results := make(AggregateResult[T], 0, len(g.handles))
	for len(g.handles) > 0 {
		select {
		case <-g.handles[0].done:
			results = append(results, g.consume(g.pop()))
		case <-t:
			return results, ErrJoinTimeout
		}
	}

	return results, nil
}

func (g *group[T]) JoinAllCtx(ctx context.Context) (AggregateResult[T], error) {
	results := make(AggregateResult[T], 0, len(g.handles))
	for len(g.handles) > 0 {
		select {
		case <-g.handles[0].done:
			results = append(results, g.consume(g.pop()))
		case <-ctx.Done():
			return results, ctx.Err()
		}
	}

	return results, nil
}

func (g *group[T]) JoinAllOK() ([]T, error) {
	values := make([]T, 0, len(g.handles))
	for len(g.handles) > 0 {
		v, err := g.Join()
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func (g *group[T]) JoinSuccessful() []T {
	values := make([]T, 0, len(g.handles))
	for len(g.handles) > 0 {
		if v, err := g.Join(); err == nil {
			values = append(values, v)
		}
	}

	return values
}

func (g *group[T]) Failures() map[string]error {
	failures := make(map[string]error, len(g.failures))
	for name, err := range g.failures {
		failures[name] = err
	}

	return failures
}

// pop removes and returns the oldest pending handle.  The caller must have
// verified that at least one handle is pending.
func (g *group[T]) pop() *handle[T] {
	h := g.handles[0]
	g.handles[0] = nil
	g.handles = g.handles[1:]
	return h
}

// consume blocks until h's task has terminated, then records its outcome
func (g *group[T]) consume(h *handle[T]) Outcome[T] {
	<-h.done

	if h.outcome.Failed() {
		g.failures[h.name] = h.outcome.Err
		g.logger.Debug("task failed",
			zap.String("group", g.id),
			zap.String("task", h.name),
			zap.Error(h.outcome.Err),
		)
	}

	return h.outcome
}
