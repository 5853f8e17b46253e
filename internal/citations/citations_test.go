package citations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, crossref, openalex http.HandlerFunc) *Service {
	t.Helper()

	s := NewService(nil, nil)
	if crossref != nil {
		srv := httptest.NewServer(crossref)
		t.Cleanup(srv.Close)
		s.CrossrefBase = srv.URL
	} else {
		s.CrossrefBase = "http://127.0.0.1:0" // unreachable
	}
	if openalex != nil {
		srv := httptest.NewServer(openalex)
		t.Cleanup(srv.Close)
		s.OpenAlexBase = srv.URL
	} else {
		s.OpenAlexBase = "http://127.0.0.1:0"
	}
	return s
}

func TestCitationCount_Crossref(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"is-referenced-by-count":17}}`))
	}, nil)

	count := s.CitationCount(context.Background(), "10.1234/abc")
	require.NotNil(t, count)
	assert.Equal(t, 17, *count)
}

func TestCitationCount_FallbackToOpenAlex(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cited_by_count":5}`))
	})

	count := s.CitationCount(context.Background(), "10.1234/abc")
	require.NotNil(t, count)
	assert.Equal(t, 5, *count)
}

// Both APIs down: the count is unknown, never an error or a panic.
func TestCitationCount_BothFail(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Nil(t, s.CitationCount(context.Background(), "10.1234/abc"))
}

func TestCitationCount_EmptyDOI(t *testing.T) {
	s := NewService(nil, nil)
	assert.Nil(t, s.CitationCount(context.Background(), ""))
}

func TestCitationCount_CacheHitSkipsAPIs(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	calls := 0
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"message":{"is-referenced-by-count":3}}`))
	}, nil)
	s.Redis = rdb
	s.CacheTTL = time.Hour

	first := s.CitationCount(context.Background(), "10.1234/abc")
	require.NotNil(t, first)
	second := s.CitationCount(context.Background(), "10.1234/abc")
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, calls, "second lookup must come from the cache")
}

func TestCitationCount_MissingFieldFallsBack(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{}}`))
	}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cited_by_count":0}`))
	})

	count := s.CitationCount(context.Background(), "10.1234/abc")
	require.NotNil(t, count)
	assert.Equal(t, 0, *count)
}
