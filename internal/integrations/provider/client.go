package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const (
	resultOK          = "ok"
	resultError       = "error"
	resultRateLimited = "rate_limited"
)

// Options параметры клиента
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// RequestsPerSecond и Burst ограничивают исходящие запросы. 0 - без ограничения.
	RequestsPerSecond float64
	Burst             int
	// DefaultSlotDuration используется, когда провайдер не прислал конец слота
	DefaultSlotDuration time.Duration
}

// Client клиент внешнего источника свободного времени
type Client struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	limiter      *rate.Limiter
	slotDuration time.Duration
	metrics      Metrics
	log          Logger
}

// NewClient создает новый экземпляр клиента провайдера
func NewClient(opts Options, metrics Metrics, log Logger) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	slotDuration := opts.DefaultSlotDuration
	if slotDuration <= 0 {
		slotDuration = domain.DefaultSlotDurationMinutes * time.Minute
	}

	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter:      limiter,
		slotDuration: slotDuration,
		metrics:      metrics,
		log:          log,
	}
}

// GetAvailability запрашивает свободные слоты в интервале [start, end] для таймзоны timezone.
// Слоты с нераспознаваемым временем отбрасываются (и учитываются в метриках),
// а не превращаются в нулевые значения.
func (c *Client) GetAvailability(ctx context.Context, start, end time.Time, timezone string) ([]domain.AvailableSlot, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidRange, start, end)
	}

	begin := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.ObserveProviderRequest(resultRateLimited, time.Since(begin))
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	slots, err := c.fetch(ctx, start, end, timezone)
	switch {
	case err == nil:
		c.metrics.ObserveProviderRequest(resultOK, time.Since(begin))
	case isRateLimited(err):
		c.metrics.ObserveProviderRequest(resultRateLimited, time.Since(begin))
	default:
		c.metrics.ObserveProviderRequest(resultError, time.Since(begin))
	}

	return slots, err
}

func (c *Client) fetch(ctx context.Context, start, end time.Time, timezone string) ([]domain.AvailableSlot, error) {
	query := url.Values{}
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("end", end.UTC().Format(time.RFC3339))
	query.Set("timezone", timezone)
	reqURL := fmt.Sprintf("%s/availability?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: provider returned 429, request_id=%s", ErrRateLimited, requestID)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status code %d, request_id=%s", ErrUnavailable, resp.StatusCode, requestID)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	slots, dropped := c.toDomain(payload.Slots)
	if dropped > 0 {
		c.log.Warn("Provider returned %d slots with unparseable times, dropped (request_id=%s)", dropped, requestID)
		c.metrics.AddDroppedSlots(dropped)
	}

	c.log.Info("Fetched %d slots from provider for %s..%s (request_id=%s)",
		len(slots), start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), requestID)

	return slots, nil
}

func (c *Client) toDomain(dtos []slotDTO) ([]domain.AvailableSlot, int) {
	slots := make([]domain.AvailableSlot, 0, len(dtos))
	dropped := 0
	for _, dto := range dtos {
		start, ok := civiltime.ParseInstant(dto.Start)
		if !ok {
			dropped++
			continue
		}

		end := start.Add(c.slotDuration)
		if dto.End != "" {
			parsed, ok := civiltime.ParseInstant(dto.End)
			if !ok || parsed.Before(start) {
				dropped++
				continue
			}
			end = parsed
		}

		slots = append(slots, domain.AvailableSlot{Start: start, End: end})
	}
	return slots, dropped
}

func isRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
