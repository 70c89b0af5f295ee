package service

import (
	"context"

	"github.com/MKhiriev/go-merge-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MergeService fetches remote documents one after another and concatenates
// the ones that could be retrieved.
type MergeService interface {
	// Collect fetches every URL in order and returns one result per URL.
	// Once ctx is done, the remaining URLs are not fetched and their results
	// carry ctx.Err().
	Collect(ctx context.Context, urls []string) []models.FetchResult

	// Merge concatenates the bodies of the successful fetches in list order.
	// Failed URLs are logged and skipped. The result is empty when the list
	// is empty or every fetch failed.
	Merge(ctx context.Context, urls []string) []byte
}

// RelayService serves the relay routes from the configuration snapshot.
type RelayService interface {
	// URLs returns the full list of URLs merged for route.
	URLs(route models.Route) ([]string, error)

	// Relay merges the documents of route and returns the raw bytes.
	// Returns ErrEmptyMerge when nothing could be merged.
	Relay(ctx context.Context, route models.Route) ([]byte, error)

	// RelayText is Relay followed by UTF-8 validation.
	// Returns ErrEmptyMerge or ErrContentNotText.
	RelayText(ctx context.Context, route models.Route) (string, error)
}
