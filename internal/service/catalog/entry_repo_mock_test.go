package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	DomainsFunc    func(ctx context.Context) ([]string, error)
	IntentsFunc    func(ctx context.Context, domainName string) ([]string, error)
	ListFunc       func(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error)
	ListPageFunc   func(ctx context.Context, f domain.StudioFilter) ([]domain.Entry, int, error)
	ListRecentFunc func(ctx context.Context, domainName string, limit int) ([]domain.Entry, error)

	calls struct {
		Domains []struct {
			Ctx context.Context
		}
		Intents []struct {
			Ctx        context.Context
			DomainName string
		}
		List []struct {
			Ctx context.Context
			Q   domain.EntryQuery
		}
		ListPage []struct {
			Ctx context.Context
			F   domain.StudioFilter
		}
		ListRecent []struct {
			Ctx        context.Context
			DomainName string
			Limit      int
		}
	}
	lockDomains    sync.RWMutex
	lockIntents    sync.RWMutex
	lockList       sync.RWMutex
	lockListPage   sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *entryRepoMock) Domains(ctx context.Context) ([]string, error) {
	if mock.DomainsFunc == nil {
		panic("entryRepoMock.DomainsFunc: method is nil but entryRepo.Domains was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDomains.Lock()
	mock.calls.Domains = append(mock.calls.Domains, callInfo)
	mock.lockDomains.Unlock()
	return mock.DomainsFunc(ctx)
}

func (mock *entryRepoMock) DomainsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDomains.RLock()
	calls := mock.calls.Domains
	mock.lockDomains.RUnlock()
	return calls
}

func (mock *entryRepoMock) Intents(ctx context.Context, domainName string) ([]string, error) {
	if mock.IntentsFunc == nil {
		panic("entryRepoMock.IntentsFunc: method is nil but entryRepo.Intents was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DomainName string
	}{Ctx: ctx, DomainName: domainName}
	mock.lockIntents.Lock()
	mock.calls.Intents = append(mock.calls.Intents, callInfo)
	mock.lockIntents.Unlock()
	return mock.IntentsFunc(ctx, domainName)
}

func (mock *entryRepoMock) IntentsCalls() []struct {
	Ctx        context.Context
	DomainName string
} {
	mock.lockIntents.RLock()
	calls := mock.calls.Intents
	mock.lockIntents.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.EntryQuery
	}{Ctx: ctx, Q: q}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, q)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx context.Context
	Q   domain.EntryQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListPage(ctx context.Context, f domain.StudioFilter) ([]domain.Entry, int, error) {
	if mock.ListPageFunc == nil {
		panic("entryRepoMock.ListPageFunc: method is nil but entryRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.StudioFilter
	}{Ctx: ctx, F: f}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, f)
}

func (mock *entryRepoMock) ListPageCalls() []struct {
	Ctx context.Context
	F   domain.StudioFilter
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListRecent(ctx context.Context, domainName string, limit int) ([]domain.Entry, error) {
	if mock.ListRecentFunc == nil {
		panic("entryRepoMock.ListRecentFunc: method is nil but entryRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DomainName string
		Limit      int
	}{Ctx: ctx, DomainName: domainName, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, domainName, limit)
}

func (mock *entryRepoMock) ListRecentCalls() []struct {
	Ctx        context.Context
	DomainName string
	Limit      int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
