package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ audioAggregator = &audioAggregatorMock{}

type audioAggregatorMock struct {
	AttachAllFunc  func(ctx context.Context, entries []domain.Entry, audioType string) ([]domain.EntryWithAudios, error)
	AttachBestFunc func(ctx context.Context, entries []domain.Entry) ([]domain.EntryWithAudio, error)

	calls struct {
		AttachAll []struct {
			Ctx       context.Context
			Entries   []domain.Entry
			AudioType string
		}
		AttachBest []struct {
			Ctx     context.Context
			Entries []domain.Entry
		}
	}
	lockAttachAll  sync.RWMutex
	lockAttachBest sync.RWMutex
}

func (mock *audioAggregatorMock) AttachAll(ctx context.Context, entries []domain.Entry, audioType string) ([]domain.EntryWithAudios, error) {
	if mock.AttachAllFunc == nil {
		panic("audioAggregatorMock.AttachAllFunc: method is nil but audioAggregator.AttachAll was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Entries   []domain.Entry
		AudioType string
	}{Ctx: ctx, Entries: entries, AudioType: audioType}
	mock.lockAttachAll.Lock()
	mock.calls.AttachAll = append(mock.calls.AttachAll, callInfo)
	mock.lockAttachAll.Unlock()
	return mock.AttachAllFunc(ctx, entries, audioType)
}

func (mock *audioAggregatorMock) AttachAllCalls() []struct {
	Ctx       context.Context
	Entries   []domain.Entry
	AudioType string
} {
	mock.lockAttachAll.RLock()
	calls := mock.calls.AttachAll
	mock.lockAttachAll.RUnlock()
	return calls
}

func (mock *audioAggregatorMock) AttachBest(ctx context.Context, entries []domain.Entry) ([]domain.EntryWithAudio, error) {
	if mock.AttachBestFunc == nil {
		panic("audioAggregatorMock.AttachBestFunc: method is nil but audioAggregator.AttachBest was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.Entry
	}{Ctx: ctx, Entries: entries}
	mock.lockAttachBest.Lock()
	mock.calls.AttachBest = append(mock.calls.AttachBest, callInfo)
	mock.lockAttachBest.Unlock()
	return mock.AttachBestFunc(ctx, entries)
}

func (mock *audioAggregatorMock) AttachBestCalls() []struct {
	Ctx     context.Context
	Entries []domain.Entry
} {
	mock.lockAttachBest.RLock()
	calls := mock.calls.AttachBest
	mock.lockAttachBest.RUnlock()
	return calls
}
