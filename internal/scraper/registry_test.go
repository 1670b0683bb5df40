package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSite struct{ host string }

func (f fakeSite) Name() string              { return f.host }
func (f fakeSite) CanHandle(url string) bool { return url == f.host }
func (f fakeSite) Selectors() Selectors      { return Selectors{} }

func TestRegistryFindSite(t *testing.T) {
	r := NewRegistry()

	site := r.FindSite("https://www.mercadolivre.com.br/ofertas?page=")
	require.NotNil(t, site)
	require.Equal(t, "Mercado Livre", site.Name())
	require.Equal(t, "a.poly-component__title", site.Selectors().Title.CSS())

	require.Nil(t, r.FindSite("http://127.0.0.1"))

	r.Register(fakeSite{host: "http://127.0.0.1"})
	require.Equal(t, "http://127.0.0.1", r.FindSite("http://127.0.0.1").Name())
}
