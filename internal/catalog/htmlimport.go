package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/techstore/assistant/internal/domain"
)

// Importer extracts product records from a supplier's HTML product listing.
// Expected markup: one element per product carrying a "data-product" class,
// with child elements classed name/description/category/price/stock. Ids are
// taken from a data-id attribute and fall back to listing position.
type Importer struct {
	httpClient *http.Client
}

func NewImporter() *Importer {
	return &Importer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads the listing page and parses it.
func (im *Importer) Fetch(ctx context.Context, url string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := im.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing returned status %d", resp.StatusCode)
	}

	return im.Parse(resp.Body)
}

// Parse extracts products from listing HTML.
func (im *Importer) Parse(r io.Reader) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var products []domain.Product
	doc.Find(".data-product, [data-product]").Each(func(i int, sel *goquery.Selection) {
		p := domain.Product{ID: i + 1}

		if idAttr, ok := sel.Attr("data-id"); ok {
			if id, err := strconv.Atoi(strings.TrimSpace(idAttr)); err == nil {
				p.ID = id
			}
		}

		p.Name = strings.TrimSpace(sel.Find(".name").First().Text())
		p.Description = strings.TrimSpace(sel.Find(".description").First().Text())
		p.Category = strings.TrimSpace(sel.Find(".category").First().Text())

		priceText := strings.TrimSpace(sel.Find(".price").First().Text())
		priceText = strings.TrimPrefix(priceText, "$")
		if price, err := decimal.NewFromString(priceText); err == nil {
			p.Price = price
		}

		stockText := strings.TrimSpace(sel.Find(".stock").First().Text())
		if stock, err := strconv.Atoi(stockText); err == nil {
			p.Stock = stock
		}

		if p.Name != "" {
			products = append(products, p)
		}
	})

	return products, nil
}
