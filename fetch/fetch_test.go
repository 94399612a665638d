package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsURL("https://osu.ppy.sh/osu/123"))
	assert.True(IsURL("http://localhost:8000/chart.osu"))
	assert.False(IsURL("charts/song.osu"))
	assert.False(IsURL("/abs/song.osu"))
	assert.False(IsURL("ftp://example.com/song.osu"))
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("osu file format v14\n"))
	}))
	defer srv.Close()

	dat, err := Download(context.Background(), srv.URL+"/chart")
	require.NoError(t, err)
	assert.Equal(t, "osu file format v14\n", string(dat))

	_, err = Download(context.Background(), srv.URL+"/missing")
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestDownloadHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unused"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Download(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
