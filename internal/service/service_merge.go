package service

import (
	"context"

	"github.com/MKhiriev/go-merge-relay/internal/adapter"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/models"
)

type mergeService struct {
	fetcher adapter.Fetcher

	logger *logger.Logger
}

func NewMergeService(fetcher adapter.Fetcher, logger *logger.Logger) MergeService {
	return &mergeService{
		fetcher: fetcher,
		logger:  logger,
	}
}

func (m *mergeService) Collect(ctx context.Context, urls []string) []models.FetchResult {
	results := make([]models.FetchResult, 0, len(urls))

	for _, url := range urls {
		// stop issuing requests once the client is gone or the server shuts down
		if err := ctx.Err(); err != nil {
			results = append(results, models.FetchResult{URL: url, Err: err})
			continue
		}

		body, err := m.fetcher.Fetch(ctx, url)
		results = append(results, models.FetchResult{URL: url, Body: body, Err: err})
	}

	return results
}

func (m *mergeService) Merge(ctx context.Context, urls []string) []byte {
	log := logger.FromContextOr(ctx, m.logger)

	var merged []byte
	for _, result := range m.Collect(ctx, urls) {
		if !result.OK() {
			log.Warn().Err(result.Err).Str("url", result.URL).Msg("unable to read remote document, skipping")
			continue
		}
		merged = append(merged, result.Body...)
	}

	return merged
}
