package stores

import (
	"context"
	"sync"

	"github.com/advisory-trading/market-analysis-agent/pkg/a2a"
	"github.com/advisory-trading/market-analysis-agent/pkg/errors"
)

/*
TaskStore records the latest known state of each task handled by the agent
so tasks/get can return it. The analysis handler itself never reads prior
state – it only writes outcomes.
*/
type TaskStore interface {
	Get(ctx context.Context, id string) (*a2a.Task, *errors.RpcError)
	Put(ctx context.Context, task *a2a.Task) *errors.RpcError
}

// InMemoryTaskStore is the default implementation, a mutex-guarded map.
// Production deployments can swap in a persistent implementation.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*a2a.Task
}

func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks: make(map[string]*a2a.Task),
	}
}

func (store *InMemoryTaskStore) Get(
	ctx context.Context, id string,
) (*a2a.Task, *errors.RpcError) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	task, ok := store.tasks[id]
	if !ok {
		return nil, errors.ErrTaskNotFound
	}

	return task, nil
}

func (store *InMemoryTaskStore) Put(
	ctx context.Context, task *a2a.Task,
) *errors.RpcError {
	if task == nil || task.ID == "" {
		return errors.ErrInvalidParams.WithMessagef("task id is required")
	}

	store.mu.Lock()
	store.tasks[task.ID] = task
	store.mu.Unlock()

	return nil
}
