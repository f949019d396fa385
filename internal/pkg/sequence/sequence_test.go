package sequence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCounter_Next(t *testing.T) {
	t.Run("starts at seed", func(t *testing.T) {
		c := NewCounter(1)
		assert.Equal(t, int64(1), c.Next())
		assert.Equal(t, int64(2), c.Next())
		assert.Equal(t, int64(3), c.Next())
	})

	t.Run("non-positive seed is raised to 1", func(t *testing.T) {
		assert.Equal(t, int64(1), NewCounter(0).Next())
		assert.Equal(t, int64(1), NewCounter(-10).Next())
	})

	t.Run("reset restarts numbering", func(t *testing.T) {
		c := NewCounter(1)
		c.Next()
		c.Next()
		c.Reset(100)
		assert.Equal(t, int64(100), c.Next())
	})
}

func TestCounter_ConcurrentNextIsUnique(t *testing.T) {
	const workers, perWorker = 8, 250

	c := NewCounter(1)
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
	)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, c.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, n := range local {
				seen[n] = struct{}{}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker+1), c.Next())
}

func TestShared(t *testing.T) {
	a := Shared().Next()
	b := Shared().Next()
	assert.Positive(t, a)
	assert.Greater(t, b, a)
	assert.Same(t, Shared(), Shared())
}
