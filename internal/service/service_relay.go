package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/internal/utils"
	"github.com/MKhiriev/go-merge-relay/models"
)

type relayService struct {
	mergeService MergeService

	routeURLs map[models.Route][]string

	logger *logger.Logger
}

// NewRelayService resolves the URL list of every route once: sub-paths are
// percent-encoded (keeping ":/?&=") and appended verbatim to the base URL,
// up and re URLs are used as configured.
func NewRelayService(mergeService MergeService, cfg config.Upstream, logger *logger.Logger) RelayService {
	subURLs := make([]string, 0, len(cfg.SubURLs))
	for _, subPath := range cfg.SubURLs {
		subURLs = append(subURLs, cfg.BaseURL+utils.Quote(subPath, utils.SubPathSafe))
	}

	return &relayService{
		mergeService: mergeService,
		routeURLs: map[models.Route][]string{
			models.RouteSub: subURLs,
			models.RouteUp:  append([]string(nil), cfg.UpURLs...),
			models.RouteRe:  append([]string(nil), cfg.ReURLs...),
		},
		logger: logger,
	}
}

func (r *relayService) URLs(route models.Route) ([]string, error) {
	urls, ok := r.routeURLs[route]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	// callers must not be able to alter the snapshot
	return append([]string(nil), urls...), nil
}

func (r *relayService) Relay(ctx context.Context, route models.Route) ([]byte, error) {
	urls, err := r.URLs(route)
	if err != nil {
		return nil, err
	}

	logger.FromContextOr(ctx, r.logger).Debug().
		Str("route", route.String()).
		Strs("urls", urls).
		Msg("merging remote documents")

	merged := r.mergeService.Merge(ctx, urls)
	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: route %q", ErrEmptyMerge, route)
	}

	return merged, nil
}

func (r *relayService) RelayText(ctx context.Context, route models.Route) (string, error) {
	merged, err := r.Relay(ctx, route)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(merged) {
		return "", fmt.Errorf("%w: route %q", ErrContentNotText, route)
	}

	return string(merged), nil
}
