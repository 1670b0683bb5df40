package scraper

import "strings"

// MercadoLivre descreve a marcação da página de ofertas do Mercado Livre
type MercadoLivre struct{}

// NewMercadoLivre cria a descrição do site do Mercado Livre
func NewMercadoLivre() *MercadoLivre {
	return &MercadoLivre{}
}

func (m *MercadoLivre) Name() string {
	return "Mercado Livre"
}

// CanHandle verifica se a URL pertence ao Mercado Livre
func (m *MercadoLivre) CanHandle(url string) bool {
	return strings.Contains(url, "mercadolivre.com.br")
}

// Selectors retorna os seletores dos cards de oferta
// Exemplo: <span class="andes-money-amount__discount">17% OFF</span>
func (m *MercadoLivre) Selectors() Selectors {
	return Selectors{
		Title:          Selector{Tag: "a", Class: "poly-component__title"},
		PriceContainer: Selector{Tag: "div", Class: "poly-price__current"},
		PriceInteger:   Selector{Tag: "span", Class: "andes-money-amount__fraction"},
		PriceCents:     Selector{Tag: "span", Class: "andes-money-amount__cents"},
		Discount:       Selector{Tag: "span", Class: "andes-money-amount__discount"},
	}
}
