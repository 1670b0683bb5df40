package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ofertas-scraper/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPrintSummaryTail(t *testing.T) {
	at := time.Date(2024, 11, 29, 10, 30, 0, 0, time.UTC)
	var offers []models.Offer
	for _, name := range []string{"Geladeira", "Micro-ondas", "Ventilador"} {
		offers = append(offers, models.Offer{Product: name, Price: "R$ 10,00", Discount: "5% OFF", IncludedIn: at})
	}

	var buf bytes.Buffer
	PrintSummary(&buf, 7, offers, 2)
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "Total registers: 7\n"))
	require.NotContains(t, out, "Geladeira")
	require.Contains(t, out, "Micro-ondas")
	require.Contains(t, out, "Ventilador")
	require.Contains(t, out, "2024-11-29T10:30:00Z")
	require.Contains(t, out, "PRODUCT")
}

func TestPrintSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, 0, nil, 10)
	require.Equal(t, "Total registers: 0\n\n", buf.String())
}
