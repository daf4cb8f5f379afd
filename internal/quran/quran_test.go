package quran

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/fault"
)

const ayatKursiArabic = `{"code":200,"status":"OK","data":{"number":262,"text":"اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ","numberInSurah":255,"surah":{"number":2,"name":"سُورَةُ البَقَرَةِ","englishName":"Al-Baqarah"}}}`
const ayatKursiMalay = `{"code":200,"status":"OK","data":{"number":262,"text":"Allah, tiada Tuhan melainkan Dia","numberInSurah":255,"surah":{"number":2,"name":"سُورَةُ البَقَرَةِ","englishName":"Al-Baqarah"}}}`

func newServer(t *testing.T, hits *atomic.Int32, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"code":`+fmt.Sprint(status)+`,"status":"error"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/quran-uthmani"):
			fmt.Fprint(w, ayatKursiArabic)
		case strings.HasSuffix(r.URL.Path, "/ms.basmeih"):
			fmt.Fprint(w, ayatKursiMalay)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(url string) *Client {
	return NewClient(url, 2*time.Second, WithLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestAyahNumberFor(t *testing.T) {
	assert.Equal(t, 2, AyahNumberFor(1))
	assert.Equal(t, 366, AyahNumberFor(365))
	assert.Equal(t, 1, AyahNumberFor(TotalAyahs))
	for d := 0; d <= 366; d++ {
		n := AyahNumberFor(d)
		assert.True(t, n >= 1 && n <= TotalAyahs)
	}
}

func TestClient_Ayah(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits, http.StatusOK)

	a, err := testClient(srv.URL).Ayah(context.Background(), 262)
	require.NoError(t, err)

	assert.Equal(t, 262, a.Number)
	assert.Equal(t, "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ", a.Arabic)
	assert.Equal(t, "Allah, tiada Tuhan melainkan Dia", a.Malay)
	assert.Equal(t, "Al-Baqarah", a.SurahNameEn)
	assert.Equal(t, "Surah Al-Baqarah (2:255)", a.Reference())
	assert.EqualValues(t, 2, hits.Load(), "one request per edition")
}

func TestClient_AyahOutOfRange(t *testing.T) {
	c := testClient("http://127.0.0.1:1")
	for _, n := range []int{0, -1, TotalAyahs + 1} {
		_, err := c.Ayah(context.Background(), n)
		assert.ErrorIs(t, err, fault.ErrInvalidArgument, "n=%d", n)
	}
}

func TestClient_AyahUpstreamStatus(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits, http.StatusBadGateway)

	_, err := testClient(srv.URL).Ayah(context.Background(), 1)
	ue, ok := fault.AsUpstream(err)
	require.True(t, ok, "expected UpstreamError, got %v", err)
	assert.Equal(t, "quran", ue.Service)
	assert.Equal(t, http.StatusBadGateway, ue.Status)
	assert.True(t, ue.Retryable())
}

func TestClient_AyahTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := testClient(url).Ayah(context.Background(), 1)
	ue, ok := fault.AsUpstream(err)
	require.True(t, ok, "expected UpstreamError, got %v", err)
	assert.Zero(t, ue.Status)
}

func TestDailyVerse_CachesPerDay(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits, http.StatusOK)
	store := cache.NewMemory()

	verse := DailyVerse(store, testClient(srv.URL),
		daily.WithRetry(daily.RetryPolicy{MaxRetries: 0}))

	day := time.Date(2026, 9, 18, 8, 0, 0, 0, time.UTC) // day 261 → ayah 262
	a, err := verse.Today(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 262, a.Number)

	_, err = verse.Today(context.Background(), day.Add(10*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load(), "same day should be served from cache")

	keys, _ := store.Keys("daily:ayah:")
	assert.Equal(t, []string{"daily:ayah:261"}, keys)
}
