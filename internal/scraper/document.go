package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector identifica elementos pela tag e por uma das classes
type Selector struct {
	Tag   string
	Class string
}

// CSS converte o seletor para a sintaxe CSS, ex: "a.poly-component__title"
func (s Selector) CSS() string {
	switch {
	case s.Class == "":
		return s.Tag
	case s.Tag == "":
		return "." + s.Class
	default:
		return s.Tag + "." + s.Class
	}
}

// Document é a capacidade mínima de consulta que o extrator precisa
type Document interface {
	FindAll(sel Selector) []Element
}

// Element é um nó encontrado no documento
type Element interface {
	Text() string
	Child(sel Selector) (Element, bool)
}

type goqueryDocument struct {
	doc *goquery.Document
}

type goqueryElement struct {
	s *goquery.Selection
}

// ParseDocument interpreta o HTML da página
func ParseDocument(body string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &goqueryDocument{doc: doc}, nil
}

func (d *goqueryDocument) FindAll(sel Selector) []Element {
	var elements []Element
	d.doc.Find(sel.CSS()).Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &goqueryElement{s: s})
	})
	return elements
}

func (e *goqueryElement) Text() string {
	return strings.TrimSpace(e.s.Text())
}

func (e *goqueryElement) Child(sel Selector) (Element, bool) {
	found := e.s.Find(sel.CSS()).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &goqueryElement{s: found}, true
}
