// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

// Outcome is the terminal result of a single task: a value when the task
// returned normally, or a non-nil Err when it returned an error or panicked.
type Outcome[T any] struct {
	// Name is the task's name within its group, e.g. "2CgHsm...:3".  Names
	// correlate outcomes with the Failures map of the owning group.
	Name string

	// Value is the task's return value.  It is the zero value when Failed.
	Value T

	// Err is non-nil when the task terminated abnormally.  A recovered panic
	// is reported as a *PanicError.
	Err error
}

// Failed reports whether this outcome represents an abnormal termination.
func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

// AggregateResult is the ordered set of outcomes from one join, in the exact
// order the tasks were spawned.  Completion order of the underlying goroutines
// is irrelevant.
type AggregateResult[T any] []Outcome[T]

// Values returns the values of the successful outcomes, preserving order.
// Failed outcomes are skipped.
func (ar AggregateResult[T]) Values() (values []T) {
	for _, o := range ar {
		if !o.Failed() {
			values = append(values, o.Value)
		}
	}

	return
}

// Errs returns the errors of the failed outcomes, preserving order.
func (ar AggregateResult[T]) Errs() (errs []error) {
	for _, o := range ar {
		if o.Failed() {
			errs = append(errs, o.Err)
		}
	}

	return
}

// Failed reports whether at least one outcome in this result failed.
func (ar AggregateResult[T]) Failed() bool {
	for _, o := range ar {
		if o.Failed() {
			return true
		}
	}

	return false
}
