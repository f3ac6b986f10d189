package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseMarkup reads product cards (.food-item) and recipe cards (.recipe-card) from a page.
// Cards missing optional children keep empty fields.
func ParseMarkup(r io.Reader) (Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Catalog{}, fmt.Errorf("parse catalog markup: %w", err)
	}

	var cat Catalog
	doc.Find(".food-item").Each(func(_ int, s *goquery.Selection) {
		cat.Products = append(cat.Products, Entry{
			Kind:        Product,
			Name:        text(s, "h3"),
			Category:    attr(s, "data-category"),
			Price:       attr(s, "data-price"),
			PriceLabel:  text(s, ".price"),
			Rating:      attr(s, "data-rating"),
			Description: text(s, ".description"),
			Seller:      text(s, ".seller"),
		})
	})
	doc.Find(".recipe-card").Each(func(_ int, s *goquery.Selection) {
		cat.Recipes = append(cat.Recipes, Entry{
			Kind:        Recipe,
			Name:        text(s, "h3"),
			Category:    attr(s, "data-category"),
			Rating:      attr(s, "data-rating"),
			Difficulty:  Difficulty(attr(s, "data-difficulty")),
			Description: text(s, ".recipe-description"),
			Ingredients: texts(s, ".recipe-ingredients li"),
			Meta:        texts(s, ".recipe-meta span"),
		})
	})
	return cat, nil
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

func texts(s *goquery.Selection, selector string) []string {
	var out []string
	s.Find(selector).Each(func(_ int, item *goquery.Selection) {
		if v := strings.TrimSpace(item.Text()); v != "" {
			out = append(out, v)
		}
	})
	return out
}
