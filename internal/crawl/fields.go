// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crawl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fieldPair is one extracted characteristic key/value.
type fieldPair struct {
	Key   string
	Value string
}

// fieldStrategy extracts key/value pairs from a parsed detail page. Each
// strategy targets one known page layout.
type fieldStrategy func(doc *goquery.Document) []fieldPair

// fieldStrategies is the ordered layout fallback chain: plain definition
// list, class-qualified definition list, header/paragraph grid. The catalog
// has shipped all three layouts at different times.
var fieldStrategies = []fieldStrategy{
	definitionList,
	classQualifiedList,
	headerGrid,
}

// extractFields tries each strategy in order and returns the first
// non-empty result. Pair filtering (placeholder dashes, "# " key markers)
// happens later, when pairs are set on the record.
func extractFields(doc *goquery.Document) []fieldPair {
	for _, strategy := range fieldStrategies {
		if pairs := strategy(doc); len(pairs) > 0 {
			return pairs
		}
	}
	return nil
}

// definitionList reads dt/dd children of the page's first <dl>.
func definitionList(doc *goquery.Document) []fieldPair {
	dl := doc.Find("dl").First()
	if dl.Length() == 0 {
		return nil
	}
	return zipPairs(dl.Find("dt"), dl.Find("dd"))
}

// classQualifiedList reads dt/dd elements by their utility classes, for the
// layout that scatters them outside a single <dl>.
func classQualifiedList(doc *goquery.Document) []fieldPair {
	keys := doc.Find("dl dt.text-sm.font-medium, div dt.text-sm.font-medium")
	values := doc.Find("dl dd.mt-1.text-sm, div dd.mt-1.text-sm")
	return zipPairs(keys, values)
}

// headerGrid reads the layout that renders each characteristic as an
// h1/p pair inside a grid cell.
func headerGrid(doc *goquery.Document) []fieldPair {
	var pairs []fieldPair
	doc.Find("div.grid > div.col-span-4").Each(func(_ int, cell *goquery.Selection) {
		header := cell.Find("h1.text-lg.font-semibold").First()
		value := cell.Find("p.text-md").First()
		if header.Length() > 0 && value.Length() > 0 {
			pairs = append(pairs, fieldPair{
				Key:   strings.TrimSpace(header.Text()),
				Value: strings.TrimSpace(value.Text()),
			})
		}
	})
	return pairs
}

// zipPairs pairs keys with values positionally, stopping at the shorter
// selection.
func zipPairs(keys, values *goquery.Selection) []fieldPair {
	n := keys.Length()
	if values.Length() < n {
		n = values.Length()
	}
	pairs := make([]fieldPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, fieldPair{
			Key:   strings.TrimSpace(keys.Eq(i).Text()),
			Value: strings.TrimSpace(values.Eq(i).Text()),
		})
	}
	return pairs
}
