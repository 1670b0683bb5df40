package scraper

import "fmt"

// Selectors agrupa os seletores usados para extrair uma oferta
type Selectors struct {
	Title          Selector
	PriceContainer Selector
	PriceInteger   Selector
	PriceCents     Selector
	Discount       Selector
}

// PageResult contém as sequências extraídas de uma página.
// Os tamanhos podem divergir: descontos são buscados no documento inteiro,
// não por card de oferta.
type PageResult struct {
	Titles    []string
	Prices    []string
	Discounts []string
}

// Extractor extrai títulos, preços e descontos de um documento
type Extractor struct {
	selectors Selectors
}

// NewExtractor cria um extrator com os seletores do site
func NewExtractor(selectors Selectors) *Extractor {
	return &Extractor{selectors: selectors}
}

// Extract aplica os seletores; um documento nil resulta em sequências vazias
func (e *Extractor) Extract(doc Document) PageResult {
	if doc == nil {
		return PageResult{}
	}
	return PageResult{
		Titles:    e.texts(doc, e.selectors.Title),
		Prices:    e.prices(doc),
		Discounts: e.texts(doc, e.selectors.Discount),
	}
}

func (e *Extractor) texts(doc Document, sel Selector) []string {
	var out []string
	for _, el := range doc.FindAll(sel) {
		out = append(out, el.Text())
	}
	return out
}

// prices gera um preço por container, mesmo sem as partes internas
func (e *Extractor) prices(doc Document) []string {
	var out []string
	for _, container := range doc.FindAll(e.selectors.PriceContainer) {
		integer, cents := "0", "00"
		if el, ok := container.Child(e.selectors.PriceInteger); ok {
			integer = el.Text()
		}
		if el, ok := container.Child(e.selectors.PriceCents); ok {
			cents = el.Text()
		}
		out = append(out, FormatPrice(integer, cents))
	}
	return out
}

// FormatPrice monta o preço no formato exibido pelo site, ex: "R$ 199,90"
func FormatPrice(integer, cents string) string {
	return fmt.Sprintf("R$ %s,%s", integer, cents)
}
