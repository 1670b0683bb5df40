package scraper

import (
	"fmt"
	"strings"
)

type card struct {
	title    string
	integer  string
	cents    string
	discount string
}

// listingHTML monta uma página no formato da listagem de ofertas
func listingHTML(cards ...card) string {
	var b strings.Builder
	b.WriteString("<html><body><ol>")
	for _, c := range cards {
		b.WriteString("<li><div class=\"poly-card\">")
		if c.title != "" {
			fmt.Fprintf(&b, "<a class=\"poly-component__title\" href=\"#\">\n  %s  </a>", c.title)
		}
		b.WriteString("<div class=\"poly-price__current\"><span class=\"andes-money-amount\">")
		if c.integer != "" {
			fmt.Fprintf(&b, "<span class=\"andes-money-amount__fraction\">%s</span>", c.integer)
		}
		if c.cents != "" {
			fmt.Fprintf(&b, "<span class=\"andes-money-amount__cents andes-money-amount__cents--superscript-24\">%s</span>", c.cents)
		}
		b.WriteString("</span></div>")
		if c.discount != "" {
			fmt.Fprintf(&b, "<span class=\"andes-money-amount__discount\"> %s </span>", c.discount)
		}
		b.WriteString("</div></li>")
	}
	b.WriteString("</ol></body></html>")
	return b.String()
}
