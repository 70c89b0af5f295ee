package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/internal/utils"
)

type httpFetcher struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFetcher constructs the resty-based implementation of [Fetcher].
// Every GET is bounded by adapterCfg.RequestTimeout, carries
// adapterCfg.UserAgent and is attempted exactly once. resty's own warnings
// are routed to logger.
func NewHTTPFetcher(adapterCfg config.Adapter, logger *logger.Logger) Fetcher {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.UserAgent)
	client.SetLogger(restyLogger{logger: logger})

	return &httpFetcher{client: client, logger: logger}
}

// Fetch implements [Fetcher].
//
// On success the status code and response headers are logged at info level.
// Every failure is logged at error level together with the URL before it is
// returned.
func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	log := logger.FromContextOr(ctx, f.logger)

	if err := validateURL(rawURL); err != nil {
		log.Error().Err(err).Str("url", rawURL).Msg("error reading remote document")
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		err = fmt.Errorf("get request: %w", err)
		log.Error().Err(err).Str("url", rawURL).Msg("error reading remote document")
		return nil, err
	}

	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Str("url", rawURL).Msg("error reading remote document")
		return nil, err
	}

	log.Info().
		Str("url", rawURL).
		Int("status", resp.StatusCode()).
		Any("headers", resp.Header()).
		Dur("duration", resp.Time()).
		Msg("remote document received")

	return resp.Body(), nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	logger *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.logger.Error().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Str("component", "resty").Msgf(format, v...)
}
