package storage

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ lister = &listerMock{}

type listerMock struct {
	ListFunc func(ctx context.Context, dir string) ([]domain.StorageChild, error)

	calls struct {
		List []struct {
			Ctx context.Context
			Dir string
		}
	}
	lockList sync.RWMutex
}

func (mock *listerMock) List(ctx context.Context, dir string) ([]domain.StorageChild, error) {
	if mock.ListFunc == nil {
		panic("listerMock.ListFunc: method is nil but lister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Dir string
	}{Ctx: ctx, Dir: dir}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, dir)
}

func (mock *listerMock) ListCalls() []struct {
	Ctx context.Context
	Dir string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
