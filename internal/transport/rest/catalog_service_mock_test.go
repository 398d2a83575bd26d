package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListDomainsFunc    func(ctx context.Context) ([]string, error)
	ListEntriesFunc    func(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error)
	ListIntentsFunc    func(ctx context.Context, domainName string) ([]string, error)
	ListPhrasesFunc    func(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error)
	StorageListingFunc func(ctx context.Context, prefix string) ([]domain.ResolvedStorageObject, error)
	StudioFunc         func(ctx context.Context, in catalog.StudioInput) (*catalog.StudioPage, error)

	calls struct {
		ListDomains []struct {
			Ctx context.Context
		}
		ListEntries []struct {
			Ctx context.Context
			In  catalog.ListEntriesInput
		}
		ListIntents []struct {
			Ctx        context.Context
			DomainName string
		}
		ListPhrases []struct {
			Ctx context.Context
			In  catalog.ListEntriesInput
		}
		StorageListing []struct {
			Ctx    context.Context
			Prefix string
		}
		Studio []struct {
			Ctx context.Context
			In  catalog.StudioInput
		}
	}
	lockListDomains    sync.RWMutex
	lockListEntries    sync.RWMutex
	lockListIntents    sync.RWMutex
	lockListPhrases    sync.RWMutex
	lockStorageListing sync.RWMutex
	lockStudio         sync.RWMutex
}

func (mock *catalogServiceMock) ListDomains(ctx context.Context) ([]string, error) {
	if mock.ListDomainsFunc == nil {
		panic("catalogServiceMock.ListDomainsFunc: method is nil but catalogService.ListDomains was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListDomains.Lock()
	mock.calls.ListDomains = append(mock.calls.ListDomains, callInfo)
	mock.lockListDomains.Unlock()
	return mock.ListDomainsFunc(ctx)
}

func (mock *catalogServiceMock) ListDomainsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListDomains.RLock()
	calls := mock.calls.ListDomains
	mock.lockListDomains.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListEntries(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error) {
	if mock.ListEntriesFunc == nil {
		panic("catalogServiceMock.ListEntriesFunc: method is nil but catalogService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  catalog.ListEntriesInput
	}{Ctx: ctx, In: in}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, in)
}

func (mock *catalogServiceMock) ListEntriesCalls() []struct {
	Ctx context.Context
	In  catalog.ListEntriesInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListIntents(ctx context.Context, domainName string) ([]string, error) {
	if mock.ListIntentsFunc == nil {
		panic("catalogServiceMock.ListIntentsFunc: method is nil but catalogService.ListIntents was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DomainName string
	}{Ctx: ctx, DomainName: domainName}
	mock.lockListIntents.Lock()
	mock.calls.ListIntents = append(mock.calls.ListIntents, callInfo)
	mock.lockListIntents.Unlock()
	return mock.ListIntentsFunc(ctx, domainName)
}

func (mock *catalogServiceMock) ListIntentsCalls() []struct {
	Ctx        context.Context
	DomainName string
} {
	mock.lockListIntents.RLock()
	calls := mock.calls.ListIntents
	mock.lockListIntents.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListPhrases(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error) {
	if mock.ListPhrasesFunc == nil {
		panic("catalogServiceMock.ListPhrasesFunc: method is nil but catalogService.ListPhrases was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  catalog.ListEntriesInput
	}{Ctx: ctx, In: in}
	mock.lockListPhrases.Lock()
	mock.calls.ListPhrases = append(mock.calls.ListPhrases, callInfo)
	mock.lockListPhrases.Unlock()
	return mock.ListPhrasesFunc(ctx, in)
}

func (mock *catalogServiceMock) ListPhrasesCalls() []struct {
	Ctx context.Context
	In  catalog.ListEntriesInput
} {
	mock.lockListPhrases.RLock()
	calls := mock.calls.ListPhrases
	mock.lockListPhrases.RUnlock()
	return calls
}

func (mock *catalogServiceMock) StorageListing(ctx context.Context, prefix string) ([]domain.ResolvedStorageObject, error) {
	if mock.StorageListingFunc == nil {
		panic("catalogServiceMock.StorageListingFunc: method is nil but catalogService.StorageListing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{Ctx: ctx, Prefix: prefix}
	mock.lockStorageListing.Lock()
	mock.calls.StorageListing = append(mock.calls.StorageListing, callInfo)
	mock.lockStorageListing.Unlock()
	return mock.StorageListingFunc(ctx, prefix)
}

func (mock *catalogServiceMock) StorageListingCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	mock.lockStorageListing.RLock()
	calls := mock.calls.StorageListing
	mock.lockStorageListing.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Studio(ctx context.Context, in catalog.StudioInput) (*catalog.StudioPage, error) {
	if mock.StudioFunc == nil {
		panic("catalogServiceMock.StudioFunc: method is nil but catalogService.Studio was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  catalog.StudioInput
	}{Ctx: ctx, In: in}
	mock.lockStudio.Lock()
	mock.calls.Studio = append(mock.calls.Studio, callInfo)
	mock.lockStudio.Unlock()
	return mock.StudioFunc(ctx, in)
}

func (mock *catalogServiceMock) StudioCalls() []struct {
	Ctx context.Context
	In  catalog.StudioInput
} {
	mock.lockStudio.RLock()
	calls := mock.calls.Studio
	mock.lockStudio.RUnlock()
	return calls
}
