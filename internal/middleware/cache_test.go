package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"available_rooms":[]}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {}, {1, 2, 3}, []byte("short")} {
		_, _, _, ok := decodePayload(bs)
		assert.False(t, ok)
	}

	// A header length pointing past the end of the payload.
	bogus := make([]byte, 8)
	bogus[7] = 0xFF
	_, _, _, ok := decodePayload(bogus)
	assert.False(t, ok)
}

func TestCacheKeyVariesWithBody(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache"}

	key := func(body string) string {
		req := httptest.NewRequest(http.MethodPost, "/rooms_per_type_and_suggestion", strings.NewReader(body))
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/rooms_per_type_and_suggestion")
		k, err := cacheKey(cfg, c)
		require.NoError(t, err)
		return k
	}

	k1 := key(`{"guests":2}`)
	k2 := key(`{"guests":3}`)
	k3 := key(`{"guests":2}`)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, k3)
}

func TestResponseCacheNilClientPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rooms_per_type_and_suggestion", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := ResponseCache(config.CacheConfig{Enabled: true}, nil)(func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
