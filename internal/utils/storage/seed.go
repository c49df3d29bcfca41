package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"
)

// Seed populates any collection key that has never been written with the fixed
// sample data. Existing data is left untouched.
func Seed(s *LocalStore) error {
	// UTC midnight of the local calendar day, the same normalization the
	// classifier applies to expiration dates
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	date := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	products := []entities.Product{
		{ID: 1, Name: "Arroz", Category: "Grãos", Unit: "kg", Description: "Arroz branco tipo 1"},
		{ID: 2, Name: "Feijão", Category: "Grãos", Unit: "kg", Description: "Feijão preto"},
		{ID: 3, Name: "Leite", Category: "Laticínios", Unit: "L", Description: "Leite integral", TrackExpiration: true},
		{ID: 4, Name: "Manteiga", Category: "Laticínios", Unit: "g", Description: "Manteiga com sal", TrackExpiration: true},
		{ID: 5, Name: "Açúcar", Category: "Condimentos", Unit: "kg", Description: "Açúcar refinado"},
		{ID: 6, Name: "Café", Category: "Bebidas", Unit: "g", Description: "Café torrado e moído"},
		{ID: 7, Name: "Ovos", Category: "Proteínas", Unit: "dúzia", Description: "Ovos brancos", TrackExpiration: true},
		{ID: 8, Name: "Queijo", Category: "Laticínios", Unit: "g", Description: "Queijo mussarela", TrackExpiration: true},
	}

	pantryItems := []entities.PantryItem{
		{ID: 1, ProductID: 1, Product: products[0], Quantity: 5, AddedDate: *date(-10), Location: "Armário da cozinha"},
		{ID: 2, ProductID: 2, Product: products[1], Quantity: 2, AddedDate: *date(-5), Location: "Armário da cozinha"},
		{ID: 3, ProductID: 3, Product: products[2], Quantity: 1, ExpirationDate: date(3), AddedDate: *date(-2), Location: "Geladeira"},
		{ID: 4, ProductID: 4, Product: products[3], Quantity: 1, ExpirationDate: date(-2), AddedDate: *date(-30), Location: "Geladeira"},
		{ID: 5, ProductID: 7, Product: products[6], Quantity: 1, ExpirationDate: date(5), AddedDate: *date(-1), Location: "Geladeira"},
		{ID: 6, ProductID: 8, Product: products[7], Quantity: 2, ExpirationDate: date(10), AddedDate: *date(-3), Location: "Geladeira"},
	}

	shoppingItems := []entities.ShoppingListItem{
		{ID: 1, ProductID: 2, Product: products[1], Quantity: 2, Priority: entities.PriorityHigh, Status: entities.StatusPending, AddedAt: today.AddDate(0, 0, -1), Notes: "Comprar no mercado", AutoAdded: true},
		{ID: 2, ProductID: 6, Product: products[5], Quantity: 1, Priority: entities.PriorityMedium, Status: entities.StatusPending, AddedAt: today.AddDate(0, 0, -2)},
		{ID: 3, ProductID: 7, Product: products[6], Quantity: 2, Priority: entities.PriorityHigh, Status: entities.StatusPending, AddedAt: today, AutoAdded: true},
	}

	if err := seedKey(s, KeyProducts, products); err != nil {
		return err
	}
	if err := seedKey(s, KeyPantry, pantryItems); err != nil {
		return err
	}
	return seedKey(s, KeyShoppingList, shoppingItems)
}

func seedKey(s *LocalStore, key string, data interface{}) error {
	_, found, err := s.Get(key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal seed data for %s: %w", key, err)
	}
	return s.Put(key, raw)
}
