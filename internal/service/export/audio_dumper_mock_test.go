package export

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ audioDumper = &audioDumperMock{}

type audioDumperMock struct {
	ListAllFunc func(ctx context.Context, limit int, offset int) ([]domain.AudioItem, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockListAll sync.RWMutex
}

func (mock *audioDumperMock) ListAll(ctx context.Context, limit int, offset int) ([]domain.AudioItem, error) {
	if mock.ListAllFunc == nil {
		panic("audioDumperMock.ListAllFunc: method is nil but audioDumper.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, limit, offset)
}

func (mock *audioDumperMock) ListAllCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
