package prayer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/fault"
	"github.com/sakinahapp/sakinah/internal/version"
)

const (
	DefaultBaseURL = "https://api.aladhan.com/v1"
	// DefaultMethod is the Muslim World League calculation.
	DefaultMethod = 3
)

// Client talks to the Aladhan timings API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *Client) { c.limiter = l }
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient builds a client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", version.UserAgent()),
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// Timings fetches the prayer times for date at coords.
func (c *Client) Timings(ctx context.Context, coords Coordinates, date time.Time, method int) (Timings, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("date", date.Format("02-01-2006")).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(coords.Latitude, 'f', 4, 64),
			"longitude": strconv.FormatFloat(coords.Longitude, 'f', 4, 64),
			"method":    strconv.Itoa(method),
		}).
		Get("/timings/{date}")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fault.Upstream("prayer", 0, err)
	}
	if !resp.IsSuccess() {
		c.log.Warn("prayer api error", zap.Int("status", resp.StatusCode()))
		return nil, fault.Upstream("prayer", resp.StatusCode(), nil)
	}

	var body timingsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fault.Upstream("prayer", resp.StatusCode(), fmt.Errorf("decoding response: %w", err))
	}

	out := make(Timings, len(Order))
	for _, p := range Order {
		v, ok := body.Data.Timings[string(p)]
		if !ok {
			return nil, fault.Upstream("prayer", resp.StatusCode(), fmt.Errorf("response missing %s", p))
		}
		out[p] = v
	}
	return out, nil
}

// DailyTimings returns a cached picker of the day's timings for state.
// Entries are keyed by day of year under "prayer.<slug>". Timings are
// fetched for the date being viewed.
func DailyTimings(store cache.Store, client *Client, state State, method int, opts ...daily.Option) *daily.Cached[Timings] {
	fetch := func(ctx context.Context, day daily.Day) (Timings, error) {
		date := day.Date
		if date.IsZero() {
			date = dateForYearDay(day.Ordinal, time.Now())
		}
		return client.Timings(ctx, state.Coordinates, date, method)
	}
	opts = append([]daily.Option{daily.WithPeriod(daily.Yearly)}, opts...)
	return daily.NewCached("prayer."+state.Slug(), store, fetch, opts...)
}

// dateForYearDay resolves a day-of-year ordinal to the matching date
// nearest to now, so a lookup just after New Year still finds 31 December.
// Day 366 only matches leap years.
func dateForYearDay(yday int, now time.Time) time.Time {
	best := time.Time{}
	var bestDist time.Duration
	for _, y := range []int{now.Year() - 1, now.Year(), now.Year() + 1} {
		d := time.Date(y, 1, yday, 12, 0, 0, 0, now.Location())
		if d.YearDay() != yday {
			continue
		}
		dist := d.Sub(now)
		if dist < 0 {
			dist = -dist
		}
		if best.IsZero() || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best.IsZero() {
		// No leap year nearby: the last day of this year.
		return time.Date(now.Year(), 12, 31, 12, 0, 0, 0, now.Location())
	}
	return best
}
