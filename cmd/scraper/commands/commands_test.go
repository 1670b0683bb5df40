package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ofertas-scraper/internal/database"

	"github.com/stretchr/testify/require"
)

const listing = `<html><body>
<a class="poly-component__title">Cafeteira</a>
<div class="poly-price__current"><span class="andes-money-amount__fraction">249</span><span class="andes-money-amount__cents">99</span></div>
<span class="andes-money-amount__discount">12% OFF</span>
</body></html>`

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		flagPages, flagDB, flagTable, flagURL, flagTail = 0, "", "", "", 0
	})
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("SCRAPER_MAX_PAGES", "7")
	t.Setenv("SCRAPER_TABLE", "offers")

	flagPages = 2
	flagTable = "ofertas"

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.MaxPages)
	require.Equal(t, "ofertas", cfg.TableName)

	flagTable = "drop table"
	_, err = loadConfig()
	require.Error(t, err)
}

func TestScrapeThenCheck(t *testing.T) {
	resetFlags(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			w.Write([]byte(listing))
			return
		}
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "scraper.db")
	ctx := context.Background()

	rootCmd.SetArgs([]string{"scrape", "--db", dbPath, "--url", srv.URL + "/?page=", "--pages", "3"})
	require.NoError(t, rootCmd.ExecuteContext(ctx))

	rootCmd.SetArgs([]string{"check", "--db", dbPath, "--tail", "5"})
	require.NoError(t, rootCmd.ExecuteContext(ctx))

	db, err := database.OpenExisting(dbPath)
	require.NoError(t, err)
	defer db.Close()
	offers, err := db.LoadOffers("offers")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, "R$ 249,99", offers[0].Price)
}

func TestCheckMissingDatabase(t *testing.T) {
	resetFlags(t)
	rootCmd.SetArgs([]string{"check", "--db", filepath.Join(t.TempDir(), "nada.db")})
	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}
