package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type idempotencyStoreStub struct {
	checkFn  func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	updateFn func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func (s *idempotencyStoreStub) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	return s.checkFn(ctx, key, response, ttl)
}

func (s *idempotencyStoreStub) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, key, response, ttl)
	}
	return nil
}

func TestIdempotencyMiddleware_FirstRequest(t *testing.T) {
	var stored []byte
	store := &idempotencyStoreStub{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return false, nil, nil
		},
		updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
			stored = response
			return nil
		},
	}

	m := NewIdempotencyMiddleware(store, time.Hour)
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/transfers", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if string(stored) != `{"id":1}` {
		t.Fatalf("expected response to be stored, got %q", stored)
	}
}

func TestIdempotencyMiddleware_Replay(t *testing.T) {
	store := &idempotencyStoreStub{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return true, []byte(`{"id":1}`), nil
		},
	}

	m := NewIdempotencyMiddleware(store, time.Hour)
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run on replay")
	}))

	req := httptest.NewRequest(http.MethodPost, "/transfers", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Body.String() != `{"id":1}` {
		t.Fatalf("expected cached body, got %q", rec.Body.String())
	}
	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("expected replay header")
	}
}

func TestIdempotencyMiddleware_SkipsReadsAndMissingKey(t *testing.T) {
	store := &idempotencyStoreStub{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			t.Fatal("store should not be consulted")
			return false, nil, nil
		},
	}

	m := NewIdempotencyMiddleware(store, time.Hour)
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	getReq := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	getReq.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), getReq)

	postReq := httptest.NewRequest(http.MethodPost, "/transfers", nil)
	handler.ServeHTTP(httptest.NewRecorder(), postReq)
}

func TestIdempotencyMiddleware_ErrorResponseNotStored(t *testing.T) {
	store := &idempotencyStoreStub{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return false, nil, nil
		},
		updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
			t.Fatal("failed responses must not be stored")
			return nil
		},
	}

	m := NewIdempotencyMiddleware(store, time.Hour)
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	req := httptest.NewRequest(http.MethodPost, "/transfers", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
