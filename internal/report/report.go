package report

import (
	"fmt"
	"io"

	"ofertas-scraper/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintSummary escreve o total de registros e as últimas n ofertas.
// offers deve estar em ordem de inserção e pode ser só o final da tabela.
func PrintSummary(w io.Writer, total int, offers []models.Offer, n int) {
	fmt.Fprintf(w, "Total registers: %d\n\n", total)
	if len(offers) == 0 {
		return
	}
	if n > 0 && len(offers) > n {
		offers = offers[len(offers)-n:]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "product", "price", "discount", "included_in"})

	first := total - len(offers)
	for i, o := range offers {
		t.AppendRow(table.Row{
			first + i,
			o.Product,
			o.Price,
			o.Discount,
			o.IncludedIn.Format(models.TimestampLayout),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
