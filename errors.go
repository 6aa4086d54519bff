// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrNoTasks is returned by Join when the group holds no pending tasks.
	ErrNoTasks = errors.New("No tasks are pending in the thread group")

	// ErrJoinTimeout is returned by JoinAllWait when the time channel becomes
	// signaled before every pending task has terminated.  This error does not
	// apply when using a context.  ctx.Err() is returned in that case.
	ErrJoinTimeout = errors.New("The thread group could not be joined within the timeout")
)

// SpawnError indicates that the underlying platform primitive could not start
// a new flow of control for a task.  The task is not part of the group.
type SpawnError struct {
	// Name is the name the task would have carried, e.g. "groupid:4".
	Name string

	// Err is the platform failure cause.
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawning task %s: %s", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic recovered at a task's goroutine boundary together
// with the stack trace captured at the point of the panic.  A panicking task
// never takes down the joining goroutine; it surfaces as a Failure outcome
// holding a *PanicError.
type PanicError struct {
	// Value is the original value passed to panic().
	Value interface{}

	// Stack is the goroutine stack trace at the point of the panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panic: %v\n%s", e.Value, e.Stack)
}

func newPanicError(v interface{}) *PanicError {
	// runtime.Stack truncates gracefully if the buffer is too small
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
