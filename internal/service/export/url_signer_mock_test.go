package export

import (
	"sync"
	"time"
)

var _ urlSigner = &urlSignerMock{}

type urlSignerMock struct {
	SignedURLFunc func(key string, ttl time.Duration) (string, error)

	calls struct {
		SignedURL []struct {
			Key string
			Ttl time.Duration
		}
	}
	lockSignedURL sync.RWMutex
}

func (mock *urlSignerMock) SignedURL(key string, ttl time.Duration) (string, error) {
	if mock.SignedURLFunc == nil {
		panic("urlSignerMock.SignedURLFunc: method is nil but urlSigner.SignedURL was just called")
	}
	callInfo := struct {
		Key string
		Ttl time.Duration
	}{Key: key, Ttl: ttl}
	mock.lockSignedURL.Lock()
	mock.calls.SignedURL = append(mock.calls.SignedURL, callInfo)
	mock.lockSignedURL.Unlock()
	return mock.SignedURLFunc(key, ttl)
}

func (mock *urlSignerMock) SignedURLCalls() []struct {
	Key string
	Ttl time.Duration
} {
	mock.lockSignedURL.RLock()
	calls := mock.calls.SignedURL
	mock.lockSignedURL.RUnlock()
	return calls
}
