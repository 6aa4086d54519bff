// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

// Starter abstracts the platform primitive that begins a new concurrent flow
// of control.  It exists so that environments with stricter resource limits
// can supply their own thread creation, and so that creation failure can be
// exercised in tests.  The default implementation runs the function on a new
// goroutine and never fails.
type Starter interface {
	// Start begins executing f concurrently.  A non-nil error means no flow
	// of control was created and f will never run.
	Start(f func()) error
}

// StarterFunc is a function type that implements Starter.
type StarterFunc func(func()) error

func (sf StarterFunc) Start(f func()) error {
	return sf(f)
}

// Goroutines returns a Starter backed by the go statement.  Its Start method
// always returns nil.
func Goroutines() Starter {
	return goroutineStarter{}
}

type goroutineStarter struct{}

func (gs goroutineStarter) Start(f func()) error {
	go f()
	return nil
}
