package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialIsCapped(t *testing.T) {
	req := require.New(t)

	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	expected := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}
	for _, exp := range expected {
		req.NoError(b.Backoff(context.Background()))
		req.Equal(exp, b.NextDuration)
	}
	req.Equal(3, b.Attempts())

	b.Reset()
	req.Equal(0, b.Attempts())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestLinear(t *testing.T) {
	req := require.New(t)

	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	req := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewExponential(time.Second, time.Second)
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Attempts())
}

func TestPoll(t *testing.T) {
	tests := []struct {
		desc     string
		results  []bool
		failAt   int
		expErr   error
		expCalls int
	}{
		{desc: "done first time", results: []bool{true}, failAt: -1, expCalls: 1},
		{desc: "done third time", results: []bool{false, false, true}, failAt: -1, expCalls: 3},
		{desc: "fails second time", results: []bool{false, false}, failAt: 1, expErr: errors.New("rpc down"), expCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			req := require.New(t)
			calls := 0
			err := NewLinear(time.Millisecond, time.Millisecond).Poll(context.Background(), func() (bool, error) {
				defer func() { calls++ }()
				if calls == tt.failAt {
					return false, tt.expErr
				}
				return tt.results[calls], nil
			})
			req.Equal(tt.expErr, err)
			req.Equal(tt.expCalls, calls)
		})
	}
}
