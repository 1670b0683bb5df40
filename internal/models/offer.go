package models

import "time"

// TimestampLayout é o formato ISO-8601 usado na coluna included_in
const TimestampLayout = time.RFC3339Nano

// Offer representa uma oferta extraída da página de promoções
type Offer struct {
	Product    string
	Price      string // Preço formatado como no site, ex: "R$ 199,90"
	Discount   string // Percentual de desconto como exibido, ex: "17% OFF"
	IncludedIn time.Time
}

// Batch é o conjunto de ofertas de uma execução, na ordem página -> posição
type Batch []Offer
