// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	var (
		assert = assert.New(t)

		success = Outcome[int]{Name: "g:1", Value: 17}
		failure = Outcome[int]{Name: "g:2", Err: errors.New("expected")}
	)

	assert.False(success.Failed())
	assert.True(failure.Failed())
}

func TestAggregateResult(t *testing.T) {
	var (
		assert = assert.New(t)

		expected = errors.New("expected")
		results  = AggregateResult[int]{
			{Name: "g:1", Value: 1},
			{Name: "g:2", Err: expected},
			{Name: "g:3", Value: 3},
		}
	)

	assert.True(results.Failed())
	assert.Equal([]int{1, 3}, results.Values())
	assert.Equal([]error{expected}, results.Errs())

	assert.False(AggregateResult[int]{}.Failed())
	assert.Empty(AggregateResult[int]{}.Values())
	assert.Empty(AggregateResult[int]{}.Errs())
}
