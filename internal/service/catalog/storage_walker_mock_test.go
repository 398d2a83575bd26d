package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ storageWalker = &storageWalkerMock{}

type storageWalkerMock struct {
	WalkFunc func(ctx context.Context, prefix string) ([]domain.StorageObject, error)

	calls struct {
		Walk []struct {
			Ctx    context.Context
			Prefix string
		}
	}
	lockWalk sync.RWMutex
}

func (mock *storageWalkerMock) Walk(ctx context.Context, prefix string) ([]domain.StorageObject, error) {
	if mock.WalkFunc == nil {
		panic("storageWalkerMock.WalkFunc: method is nil but storageWalker.Walk was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{Ctx: ctx, Prefix: prefix}
	mock.lockWalk.Lock()
	mock.calls.Walk = append(mock.calls.Walk, callInfo)
	mock.lockWalk.Unlock()
	return mock.WalkFunc(ctx, prefix)
}

func (mock *storageWalkerMock) WalkCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	mock.lockWalk.RLock()
	calls := mock.calls.Walk
	mock.lockWalk.RUnlock()
	return calls
}
