// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

import (
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option represents a configuration option for a thread group
type Option func(*settings)

// settings carries the non-generic configuration applied by New
type settings struct {
	id      string
	logger  *zap.Logger
	starter Starter
}

func defaultSettings() settings {
	return settings{
		id:      ksuid.New().String(),
		logger:  sallust.Default(),
		starter: Goroutines(),
	}
}

// WithID sets the group's id, which prefixes the name of every task spawned
// into it.  If empty, a generated ksuid is used instead.
func WithID(id string) Option {
	return func(s *settings) {
		if len(id) == 0 {
			s.id = ksuid.New().String()
		} else {
			s.id = id
		}
	}
}

// WithLogger sets the zap Logger used for task lifecycle events.  If nil,
// the default sallust logger is used instead.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l == nil {
			s.logger = sallust.Default()
		} else {
			s.logger = l
		}
	}
}

// WithStarter establishes the platform primitive used to begin each task's
// flow of control.  If nil, goroutines are used.
func WithStarter(st Starter) Option {
	return func(s *settings) {
		if st == nil {
			s.starter = Goroutines()
		} else {
			s.starter = st
		}
	}
}
