package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("<html>ok</html>"))
		case "/moved":
			http.Redirect(w, r, "/ok", http.StatusFound)
		case "/slow":
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte("late"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(100 * time.Millisecond)
	ctx := context.Background()

	body, err := f.Fetch(ctx, srv.URL+"/ok")
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", body)

	body, err = f.Fetch(ctx, srv.URL+"/moved")
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", body)

	_, err = f.Fetch(ctx, srv.URL+"/missing")
	require.ErrorContains(t, err, "404")

	_, err = f.Fetch(ctx, srv.URL+"/slow")
	require.Error(t, err)
}
