package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisory-trading/market-analysis-agent/pkg/a2a"
	"github.com/advisory-trading/market-analysis-agent/pkg/errors"
)

func TestTaskStorePutGet(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	task := &a2a.Task{ID: "task1"}
	task.ToStatus(a2a.TaskStateCompleted, nil)

	require.Nil(t, store.Put(ctx, task))

	got, rpcErr := store.Get(ctx, "task1")
	require.Nil(t, rpcErr)
	assert.Same(t, task, got)
	assert.Equal(t, a2a.TaskStateCompleted, got.Status.State)
}

func TestTaskStoreGetMissing(t *testing.T) {
	store := NewInMemoryTaskStore()

	got, rpcErr := store.Get(context.Background(), "nope")
	assert.Nil(t, got)
	assert.Equal(t, errors.ErrTaskNotFound, rpcErr)
}

func TestTaskStorePutValidation(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	assert.NotNil(t, store.Put(ctx, nil))
	assert.NotNil(t, store.Put(ctx, &a2a.Task{}))
}

func TestTaskStorePutOverwrites(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	first := &a2a.Task{ID: "task1"}
	first.ToStatus(a2a.TaskStateWorking, nil)
	require.Nil(t, store.Put(ctx, first))

	second := &a2a.Task{ID: "task1"}
	second.ToStatus(a2a.TaskStateFailed, nil)
	require.Nil(t, store.Put(ctx, second))

	got, rpcErr := store.Get(ctx, "task1")
	require.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateFailed, got.Status.State)
}
