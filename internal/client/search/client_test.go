package search

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mpavlenko/recipekeeper/internal/clock"
	"github.com/mpavlenko/recipekeeper/internal/common"
	"github.com/mpavlenko/recipekeeper/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memMeta is a map-backed metadata repository for cooldown tests.
type memMeta struct {
	m map[string][]byte
}

func newMemMeta() *memMeta { return &memMeta{m: make(map[string][]byte)} }

func (r *memMeta) Get(ctx context.Context, key string) ([]byte, error) {
	return r.m[key], nil
}

func (r *memMeta) Set(ctx context.Context, key string, value []byte) error {
	r.m[key] = value
	return nil
}

func (r *memMeta) Delete(ctx context.Context, key string) error {
	delete(r.m, key)
	return nil
}

const resultsBody = `{"results":[
  {"id":101,"title":"Minestrone","image":"http://img/101.jpg","vegetarian":true,
   "extendedIngredients":[{"original":"2 carrots"},{"original":"1 onion"}],
   "instructions":"Chop and simmer."}
]}`

// newTestClient wires a client whose per-key response is scripted by
// statusFor. calls counts every network request.
func newTestClient(t *testing.T, keys []string, clk clock.Clock, statusFor func(key string) int, calls *int) (*Client, *Cooldown) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		key := r.URL.Query().Get("apiKey")
		status := statusFor(key)
		if status >= 200 && status <= 299 {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(resultsBody))
			return
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	cd := NewCooldown(newMemMeta(), clk)
	c := NewClient(NewPool(keys), cd, testLogger(),
		WithEndpoint(srv.URL+"/search?apiKey="+KeyPlaceholder),
		WithHTTPClient(srv.Client()),
	)
	return c, cd
}

func TestSearch_AllKeysRejectedExhaustsPool(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, []string{"k1", "k2", "k3"}, clk,
		func(string) int { return http.StatusUnauthorized }, &calls)

	_, err := c.Search(ctx, Query{Text: "soup"})
	require.ErrorIs(t, err, common.ErrAllKeysExhausted)
	require.Equal(t, 3, calls, "exactly one attempt per key")
	require.True(t, c.Pool().Empty())
}

func TestSearch_EarlySuccessStopsRotation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, []string{"bad1", "bad2", "good", "never"}, clk,
		func(key string) int {
			if key == "good" || key == "never" {
				return http.StatusOK
			}
			return http.StatusPaymentRequired
		}, &calls)

	got, err := c.Search(ctx, Query{Text: "soup", Number: 5})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)
	require.Equal(t, "Minestrone", got[0].Title)
	require.True(t, got[0].Vegetarian)
	require.Equal(t, []string{"2 carrots", "1 onion"}, got[0].Ingredients)

	require.Equal(t, 3, calls, "stops at the first working key")
	require.Equal(t, []string{"good", "never"}, c.Pool().Keys(), "only the failing keys are removed")
}

func TestSearch_ServerErrorDoesNotRotate(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, []string{"k1", "k2", "k3"}, clk,
		func(string) int { return http.StatusInternalServerError }, &calls)

	_, err := c.Search(ctx, Query{Text: "soup"})
	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	require.Equal(t, 1, calls, "non-credential errors abort immediately")
	require.Equal(t, 3, c.Pool().Len(), "no key is removed for a server error")
}

func TestSearch_MalformedBodyIsRequestFailed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"results": "not-a-list"`))
	}))
	t.Cleanup(srv.Close)

	cd := NewCooldown(newMemMeta(), clk)
	c := NewClient(NewPool([]string{"k1"}), cd, testLogger(),
		WithEndpoint(srv.URL+"/search?apiKey="+KeyPlaceholder),
		WithHTTPClient(srv.Client()),
	)

	_, err := c.Search(ctx, Query{Text: "soup"})
	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	require.Equal(t, 1, c.Pool().Len())
}

func TestSearch_CooldownBlocksWithoutNetworkCalls(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, []string{"k1", "k2"}, clk,
		func(string) int { return http.StatusUnauthorized }, &calls)

	_, err := c.Search(ctx, Query{Text: "soup"})
	require.ErrorIs(t, err, common.ErrAllKeysExhausted)
	callsAfterExhaustion := calls

	_, err = c.Search(ctx, Query{Text: "soup"})
	var rl *RateLimitedError
	require.ErrorAs(t, err, &rl)
	require.Equal(t, int64(DefaultCooldown/time.Second), rl.RemainingSeconds)
	require.Equal(t, callsAfterExhaustion, calls, "no network call while rate limited")

	clk.Advance(10 * time.Second)
	_, err = c.Search(ctx, Query{Text: "soup"})
	require.ErrorAs(t, err, &rl)
	require.Equal(t, int64(DefaultCooldown/time.Second)-10, rl.RemainingSeconds, "remaining seconds decrease")
}

func TestSearch_ExpiredCooldownDoesNotRestoreKeys(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, []string{"k1"}, clk,
		func(string) int { return http.StatusUnauthorized }, &calls)

	_, err := c.Search(ctx, Query{Text: "soup"})
	require.ErrorIs(t, err, common.ErrAllKeysExhausted)

	clk.Advance(DefaultCooldown + time.Second)
	_, err = c.Search(ctx, Query{Text: "soup"})
	require.ErrorIs(t, err, common.ErrNoAPIKeys, "expiry forgives the cooldown, not the retired keys")
}

func TestSearch_EmptyPoolFailsFast(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))
	var calls int
	c, _ := newTestClient(t, nil, clk, func(string) int { return http.StatusOK }, &calls)

	_, err := c.Search(ctx, Query{Text: "soup"})
	require.ErrorIs(t, err, common.ErrNoAPIKeys)
	require.Zero(t, calls)
}

func TestSearch_NetworkErrorIsRequestFailed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFakeClock(time.Unix(1_700_000_000, 0))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse every connection

	cd := NewCooldown(newMemMeta(), clk)
	c := NewClient(NewPool([]string{"k1", "k2"}), cd, testLogger(),
		WithEndpoint(srv.URL+"/search?apiKey="+KeyPlaceholder),
	)

	_, err := c.Search(ctx, Query{Text: "soup"})
	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	require.Equal(t, 2, c.Pool().Len())
}
