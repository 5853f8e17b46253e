// Package citations enriches publications with citation counts looked up by
// DOI. Crossref is tried first, OpenAlex as fallback. Failures are swallowed
// into a nil count: the public pages must stay available when enrichment is
// down.
package citations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultCrossrefBase = "https://api.crossref.org"
	DefaultOpenAlexBase = "https://api.openalex.org"

	// counts are refreshed daily; the cache hint mirrors that
	DefaultCacheTTL = 24 * time.Hour
)

type Service struct {
	HTTP         *http.Client
	Redis        *redis.Client // optional; nil disables caching
	Logger       *zap.Logger
	CrossrefBase string
	OpenAlexBase string
	CacheTTL     time.Duration
}

func NewService(rdb *redis.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		Redis:        rdb,
		Logger:       logger,
		CrossrefBase: DefaultCrossrefBase,
		OpenAlexBase: DefaultOpenAlexBase,
		CacheTTL:     DefaultCacheTTL,
	}
}

// CitationCount returns the citation count for a DOI, or nil when it cannot
// be determined. It never returns an error: enrichment is best effort.
func (s *Service) CitationCount(ctx context.Context, doi string) *int {
	if doi == "" {
		return nil
	}

	if cached := s.cacheGet(ctx, doi); cached != nil {
		return cached
	}

	count, err := s.fetchCrossref(ctx, doi)
	if err != nil {
		s.Logger.Debug("crossref lookup failed, trying openalex",
			zap.String("doi", doi), zap.Error(err))
		count, err = s.fetchOpenAlex(ctx, doi)
	}
	if err != nil {
		s.Logger.Warn("citation lookup failed", zap.String("doi", doi), zap.Error(err))
		return nil
	}

	s.cacheSet(ctx, doi, count)
	return &count
}

func (s *Service) cacheKey(doi string) string { return "citations:" + doi }

func (s *Service) cacheGet(ctx context.Context, doi string) *int {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, s.cacheKey(doi)).Result()
	if err != nil {
		return nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &count
}

func (s *Service) cacheSet(ctx context.Context, doi string, count int) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, s.cacheKey(doi), strconv.Itoa(count), s.CacheTTL).Err(); err != nil {
		s.Logger.Debug("citation cache write failed", zap.Error(err))
	}
}

func (s *Service) fetchCrossref(ctx context.Context, doi string) (int, error) {
	var payload struct {
		Message struct {
			IsReferencedByCount *int `json:"is-referenced-by-count"`
		} `json:"message"`
	}
	endpoint := s.CrossrefBase + "/works/" + url.PathEscape(doi)
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, err
	}
	if payload.Message.IsReferencedByCount == nil {
		return 0, fmt.Errorf("crossref response missing citation count")
	}
	return *payload.Message.IsReferencedByCount, nil
}

func (s *Service) fetchOpenAlex(ctx context.Context, doi string) (int, error) {
	var payload struct {
		CitedByCount *int `json:"cited_by_count"`
	}
	endpoint := s.OpenAlexBase + "/works/doi:" + url.PathEscape(doi)
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, err
	}
	if payload.CitedByCount == nil {
		return 0, fmt.Errorf("openalex response missing citation count")
	}
	return *payload.CitedByCount, nil
}

func (s *Service) getJSON(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
