// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgrouptest

import (
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/threadgroup"
)

// Starter is a mocked threadgroup.Starter.  It is most useful for simulating
// platform resource exhaustion on spawn, which the real goroutine-backed
// starter can never produce.
type Starter struct {
	mock.Mock
}

var _ threadgroup.Starter = (*Starter)(nil)

func (m *Starter) Start(f func()) error {
	return m.Called(f).Error(0)
}

// OnStart sets up an expectation for any Start call, returning the given
// error.  When err is nil the mocked call also runs the task on a new
// goroutine, preserving the real starter's behavior.
func (m *Starter) OnStart(err error) *mock.Call {
	c := m.On("Start", mock.AnythingOfType("func()")).Return(err)
	if err == nil {
		c.Run(func(arguments mock.Arguments) {
			go arguments.Get(0).(func())()
		})
	}

	return c
}
