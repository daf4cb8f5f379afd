// Package quran fetches ayahs from the alquran.cloud API.
package quran

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/fault"
	"github.com/sakinahapp/sakinah/internal/version"
)

// TotalAyahs is the number of ayahs in the Quran.
const TotalAyahs = 6236

const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"

	editionArabic = "quran-uthmani"
	editionMalay  = "ms.basmeih"
)

// Ayah is one verse with its Malay translation.
type Ayah struct {
	Number        int    `json:"number"`
	Arabic        string `json:"arabic"`
	Malay         string `json:"malay"`
	SurahNumber   int    `json:"surah_number"`
	SurahNameEn   string `json:"surah_name_en"`
	SurahNameAr   string `json:"surah_name_ar"`
	NumberInSurah int    `json:"number_in_surah"`
}

// Reference returns e.g. "Surah Al-Baqarah (2:255)".
func (a Ayah) Reference() string {
	return fmt.Sprintf("Surah %s (%d:%d)", a.SurahNameEn, a.SurahNumber, a.NumberInSurah)
}

// AyahNumberFor maps a day of the year onto an ayah number in 1..TotalAyahs.
func AyahNumberFor(dayOfYear int) int {
	return dayOfYear%TotalAyahs + 1
}

// Client talks to the alquran.cloud REST API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLimiter replaces the default client-side rate limit.
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
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ayahResponse struct {
	Code int `json:"code"`
	Data struct {
		Number        int    `json:"number"`
		Text          string `json:"text"`
		NumberInSurah int    `json:"numberInSurah"`
		Surah         struct {
			Number      int    `json:"number"`
			Name        string `json:"name"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
	} `json:"data"`
}

// Ayah fetches ayah n in Arabic (Uthmani) and Malay (Basmeih) in parallel.
func (c *Client) Ayah(ctx context.Context, n int) (Ayah, error) {
	if n < 1 || n > TotalAyahs {
		return Ayah{}, fault.Invalid("ayah number %d out of range 1..%d", n, TotalAyahs)
	}

	var ar, ms ayahResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.edition(gctx, n, editionArabic, &ar) })
	g.Go(func() error { return c.edition(gctx, n, editionMalay, &ms) })
	if err := g.Wait(); err != nil {
		return Ayah{}, err
	}

	return Ayah{
		Number:        ar.Data.Number,
		Arabic:        ar.Data.Text,
		Malay:         ms.Data.Text,
		SurahNumber:   ar.Data.Surah.Number,
		SurahNameEn:   ar.Data.Surah.EnglishName,
		SurahNameAr:   ar.Data.Surah.Name,
		NumberInSurah: ar.Data.NumberInSurah,
	}, nil
}

func (c *Client) edition(ctx context.Context, n int, edition string, out *ayahResponse) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"number":  strconv.Itoa(n),
			"edition": edition,
		}).
		Get("/ayah/{number}/{edition}")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fault.Upstream("quran", 0, err)
	}
	if !resp.IsSuccess() {
		c.log.Warn("quran api error",
			zap.Int("status", resp.StatusCode()),
			zap.String("edition", edition),
			zap.Int("ayah", n),
		)
		return fault.Upstream("quran", resp.StatusCode(), nil)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fault.Upstream("quran", resp.StatusCode(), fmt.Errorf("decoding %s response: %w", edition, err))
	}
	if out.Code != 0 && out.Code != http.StatusOK {
		return fault.Upstream("quran", out.Code, nil)
	}
	return nil
}

// DailyVerse returns the cached daily ayah picker. The cache is keyed by day
// of year and the fetched ayah is AyahNumberFor(day).
func DailyVerse(store cache.Store, client *Client, opts ...daily.Option) *daily.Cached[Ayah] {
	fetch := func(ctx context.Context, day daily.Day) (Ayah, error) {
		return client.Ayah(ctx, AyahNumberFor(day.Ordinal))
	}
	return daily.NewCached("ayah", store, fetch, append([]daily.Option{daily.WithPeriod(daily.Yearly)}, opts...)...)
}
