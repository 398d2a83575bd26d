package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/missing"
)

var _ missingService = &missingServiceMock{}

type missingServiceMock struct {
	ListRequestsFunc func(ctx context.Context, in missing.ListRequestsInput) (*missing.RequestPage, error)
	RecordFunc       func(ctx context.Context, in missing.RecordInput) (domain.MissingRequest, error)

	calls struct {
		ListRequests []struct {
			Ctx context.Context
			In  missing.ListRequestsInput
		}
		Record []struct {
			Ctx context.Context
			In  missing.RecordInput
		}
	}
	lockListRequests sync.RWMutex
	lockRecord       sync.RWMutex
}

func (mock *missingServiceMock) ListRequests(ctx context.Context, in missing.ListRequestsInput) (*missing.RequestPage, error) {
	if mock.ListRequestsFunc == nil {
		panic("missingServiceMock.ListRequestsFunc: method is nil but missingService.ListRequests was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  missing.ListRequestsInput
	}{Ctx: ctx, In: in}
	mock.lockListRequests.Lock()
	mock.calls.ListRequests = append(mock.calls.ListRequests, callInfo)
	mock.lockListRequests.Unlock()
	return mock.ListRequestsFunc(ctx, in)
}

func (mock *missingServiceMock) ListRequestsCalls() []struct {
	Ctx context.Context
	In  missing.ListRequestsInput
} {
	mock.lockListRequests.RLock()
	calls := mock.calls.ListRequests
	mock.lockListRequests.RUnlock()
	return calls
}

func (mock *missingServiceMock) Record(ctx context.Context, in missing.RecordInput) (domain.MissingRequest, error) {
	if mock.RecordFunc == nil {
		panic("missingServiceMock.RecordFunc: method is nil but missingService.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  missing.RecordInput
	}{Ctx: ctx, In: in}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, in)
}

func (mock *missingServiceMock) RecordCalls() []struct {
	Ctx context.Context
	In  missing.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
