package missing

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	ListFunc   func(ctx context.Context, f domain.RequestFilter) ([]domain.MissingRequest, int, error)
	RecordFunc func(ctx context.Context, key domain.MissingRequestKey, now time.Time) (domain.MissingRequest, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.RequestFilter
		}
		Record []struct {
			Ctx context.Context
			Key domain.MissingRequestKey
			Now time.Time
		}
	}
	lockList   sync.RWMutex
	lockRecord sync.RWMutex
}

func (mock *requestRepoMock) List(ctx context.Context, f domain.RequestFilter) ([]domain.MissingRequest, int, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RequestFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *requestRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RequestFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requestRepoMock) Record(ctx context.Context, key domain.MissingRequestKey, now time.Time) (domain.MissingRequest, error) {
	if mock.RecordFunc == nil {
		panic("requestRepoMock.RecordFunc: method is nil but requestRepo.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.MissingRequestKey
		Now time.Time
	}{Ctx: ctx, Key: key, Now: now}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, key, now)
}

func (mock *requestRepoMock) RecordCalls() []struct {
	Ctx context.Context
	Key domain.MissingRequestKey
	Now time.Time
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
