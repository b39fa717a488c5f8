// Package catalogsvc - Test trang rỗng và sort của listing storefront.
package catalogsvc

import (
	"testing"

	catalogdto "vela_commerce/internal/api/catalog/dto"
)

func TestEmptyStorefrontPage(t *testing.T) {
	page := emptyStorefrontPage(&catalogdto.ProductListQuery{Page: 3, Limit: 12})
	if page.Total != 0 {
		t.Errorf("trang rỗng phải có total 0, got %d", page.Total)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Error("items phải là slice rỗng, không phải nil")
	}
	if page.Page != 3 || page.PerPage != 12 {
		t.Errorf("phải giữ page/limit của query, got page=%d perPage=%d", page.Page, page.PerPage)
	}

	defaulted := emptyStorefrontPage(&catalogdto.ProductListQuery{Page: 0, Limit: 20})
	if defaulted.Page != 1 {
		t.Errorf("page dưới 1 phải về 1, got %d", defaulted.Page)
	}
}

func TestStorefrontSort(t *testing.T) {
	cases := []struct {
		sort  string
		key   string
		value int
	}{
		{"price_asc", "price", 1},
		{"price_desc", "price", -1},
		{"rating", "ratingAvg", -1},
		{"", "createdAt", -1},
		{"bogus", "createdAt", -1},
	}
	for _, c := range cases {
		doc := storefrontSort(c.sort)
		if len(doc) == 0 || doc[0].Key != c.key || doc[0].Value != c.value {
			t.Errorf("storefrontSort(%q) = %v, muốn đứng đầu {%s: %d}", c.sort, doc, c.key, c.value)
		}
	}
}
