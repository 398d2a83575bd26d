package audio

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ audioRepo = &audioRepoMock{}

type audioRepoMock struct {
	ListByEntryIDsFunc func(ctx context.Context, entryIDs []string, f domain.AudioFilter) ([]domain.AudioItem, error)

	calls struct {
		ListByEntryIDs []struct {
			Ctx      context.Context
			EntryIDs []string
			F        domain.AudioFilter
		}
	}
	lockListByEntryIDs sync.RWMutex
}

func (mock *audioRepoMock) ListByEntryIDs(ctx context.Context, entryIDs []string, f domain.AudioFilter) ([]domain.AudioItem, error) {
	if mock.ListByEntryIDsFunc == nil {
		panic("audioRepoMock.ListByEntryIDsFunc: method is nil but audioRepo.ListByEntryIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntryIDs []string
		F        domain.AudioFilter
	}{Ctx: ctx, EntryIDs: entryIDs, F: f}
	mock.lockListByEntryIDs.Lock()
	mock.calls.ListByEntryIDs = append(mock.calls.ListByEntryIDs, callInfo)
	mock.lockListByEntryIDs.Unlock()
	return mock.ListByEntryIDsFunc(ctx, entryIDs, f)
}

func (mock *audioRepoMock) ListByEntryIDsCalls() []struct {
	Ctx      context.Context
	EntryIDs []string
	F        domain.AudioFilter
} {
	mock.lockListByEntryIDs.RLock()
	calls := mock.calls.ListByEntryIDs
	mock.lockListByEntryIDs.RUnlock()
	return calls
}
