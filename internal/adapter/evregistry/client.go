package evregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/evwatch/charger-alerts/internal/config"
	"github.com/evwatch/charger-alerts/internal/domain"
	"github.com/evwatch/charger-alerts/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Client harvests connector records from the public charger registry
// (getChargerInfo). It walks every region code, paging until the registry
// returns a short page, with a small retry budget per page.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock

	pageSize   int
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a registry client from config. Pass a nil clock to use
// real time; tests inject a fake to skip the retry sleeps.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		baseURL:    cfg.RegistryBaseURL,
		serviceKey: cfg.DataAPIKey,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
		pageSize:   cfg.PageSize,
		maxRetries: cfg.MaxRetries,
		retryDelay: 2 * time.Second,
	}
}

// FetchStations retrieves every connector record across all region codes.
// Regions are independent: a region that keeps failing after retries is
// logged and the harvest moves on, keeping whatever pages that region already
// delivered. Dropping them would make those stations reappear as "new" on the
// next successful run.
func (c *Client) FetchStations(ctx context.Context) ([]domain.StationRecord, error) {
	var all []domain.StationRecord

	for _, zcode := range domain.RegionCodes() {
		records, err := c.fetchRegion(ctx, zcode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("region harvest incomplete", "zcode", zcode, "kept", len(records), "error", err)
		}
		all = append(all, records...)
	}

	return all, nil
}

// fetchRegion pages through one region. On a page failure it returns the
// records harvested so far together with the error.
func (c *Client) fetchRegion(ctx context.Context, zcode string) ([]domain.StationRecord, error) {
	var records []domain.StationRecord

	for page := 1; ; page++ {
		items, err := c.fetchPageWithRetry(ctx, zcode, page)
		if err != nil {
			return records, err
		}
		if len(items) == 0 {
			break
		}

		records = append(records, items...)
		c.logger.Debug("page harvested", "zcode", zcode, "page", page, "items", len(items))

		// A short page means the region is exhausted.
		if len(items) < c.pageSize {
			break
		}
	}

	return records, nil
}

// fetchPageWithRetry attempts one page up to maxRetries times, sleeping
// briefly between attempts the way the upstream rate limits expect.
func (c *Client) fetchPageWithRetry(ctx context.Context, zcode string, page int) ([]domain.StationRecord, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		items, err := c.fetchPage(ctx, zcode, page)
		if err == nil {
			return items, nil
		}
		lastErr = err
		if c.metrics != nil {
			c.metrics.RegistryErrors.Inc()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt < c.maxRetries {
			c.clock.Sleep(c.retryDelay)
		}
	}
	return nil, fmt.Errorf("page %d of region %s: %w", page, zcode, lastErr)
}

func (c *Client) fetchPage(ctx context.Context, zcode string, page int) ([]domain.StationRecord, error) {
	params := url.Values{
		"serviceKey": {c.serviceKey},
		"pageNo":     {strconv.Itoa(page)},
		"numOfRows":  {strconv.Itoa(c.pageSize)},
		"zcode":      {zcode},
		"dataType":   {"JSON"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.RegistryRequests.Inc()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("registry API error: status %d: %s", resp.StatusCode, body)
	}

	var payload chargerInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return payload.records(), nil
}
