package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/arena/pkg/sequence"
)

func TestConcurrent_RunsEveryElement(t *testing.T) {
	var sum atomic.Int64
	err := Concurrent(context.Background(), sequence.From([]int{1, 2, 3, 4}), func(_ context.Context, v int) error {
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
}

func TestConcurrent_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Concurrent(context.Background(), sequence.From([]int{1, 2, 3}), func(ctx context.Context, v int) error {
		if v == 2 {
			return boom
		}
		<-ctx.Done()
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestParallelMust(t *testing.T) {
	out := make([]int, 5)
	ParallelMust(sequence.From([]int{0, 1, 2, 3, 4}), func(i int) {
		out[i] = i * i
	})
	assert.Equal(t, []int{0, 1, 4, 9, 16}, out)
}
