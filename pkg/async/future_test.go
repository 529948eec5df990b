package async

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_Await(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		f := Go(context.Background(), func(context.Context) (int, error) { return 42, nil })
		v, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("error", func(t *testing.T) {
		f := Go(context.Background(), func(context.Context) (string, error) { return "", errors.New("store down") })
		_, err := f.Await(context.Background())
		assert.EqualError(t, err, "store down")
	})

	t.Run("bounded wait does not cancel the operation", func(t *testing.T) {
		release := make(chan struct{})
		var opCtxErr error
		f := Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release
			opCtxErr = ctx.Err()
			return 1, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		v, err := f.Result()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.NoError(t, opCtxErr)
	})

	t.Run("caller cancellation is not propagated", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		started := make(chan struct{})
		f := Go(ctx, func(ctx context.Context) (bool, error) {
			close(started)
			time.Sleep(10 * time.Millisecond)
			return ctx.Err() == nil, nil
		})
		<-started
		cancel()
		alive, err := f.Result()
		require.NoError(t, err)
		assert.True(t, alive)
	})
}

func TestFuture_Done(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) { return 7, nil })
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future not completed")
	}
	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestThen(t *testing.T) {
	t.Run("chains value", func(t *testing.T) {
		f := Go(context.Background(), func(context.Context) (int, error) { return 5, nil })
		s := Then(f, func(v int) (string, error) { return strconv.Itoa(v * 2), nil })
		v, err := s.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "10", v)
	})

	t.Run("passes error through", func(t *testing.T) {
		called := false
		f := Go(context.Background(), func(context.Context) (int, error) { return 0, errors.New("failed") })
		s := Then(f, func(v int) (string, error) { called = true; return "", nil })
		_, err := s.Result()
		assert.EqualError(t, err, "failed")
		assert.False(t, called)
	})
}
