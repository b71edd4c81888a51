package test

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

const nameLetters = "abcdefghijklmnopqrstuvwxyz"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomCustomerName returns a capitalised pseudo-random name within the provided length bounds.
func RandomCustomerName(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = nameLetters[randomIntn(len(nameLetters))]
	}
	return strings.ToUpper(string(buf[:1])) + string(buf[1:])
}

// RandomOrderDate returns a valid dd/mm/yyyy date string.
func RandomOrderDate() string {
	day := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, randomIntn(5*365))
	return day.Format(model.DateLayout)
}

// RandomDraft builds a draft that passes validation against catalog.
func RandomDraft(catalog *model.Catalog, items int) model.OrderDraft {
	if items <= 0 {
		items = 1
	}
	products := catalog.Products()
	draft := model.OrderDraft{
		CustomerName: RandomCustomerName(4, 10),
		Date:         RandomOrderDate(),
		Items:        make([]model.ItemDraft, 0, items),
	}
	for range items {
		p := products[randomIntn(len(products))]
		draft.Items = append(draft.Items, model.ItemDraft{
			Product:   p.Name,
			Quantity:  fmt.Sprint(1 + randomIntn(9)),
			UnitPrice: p.UnitPrice.StringFixed(2),
		})
	}
	return draft
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
