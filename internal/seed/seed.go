// Package seed inserts demo fixtures through the service layer so the
// same validation and hashing run as in production traffic.
package seed

import (
	"context"
	"errors"
	"fmt"

	"boutique-api/internal/domain"
	accountsvc "boutique-api/internal/service/account"
	catalogsvc "boutique-api/internal/service/catalog"
)

var demoArticles = []catalogsvc.ArticleInput{
	{Name: "Espresso cup", Description: "Porcelain, 90ml", PriceCents: 1250, Stock: 40},
	{Name: "Pour-over kettle", Description: "Gooseneck, 1L", PriceCents: 4900, Stock: 15},
	{Name: "Coffee beans 1kg", Description: "Single origin, medium roast", PriceCents: 2390, Stock: 60},
	{Name: "Hand grinder", Description: "Steel burrs", PriceCents: 7500, Stock: 8},
}

// Apply inserts the demo catalog plus one demo account. Re-running is
// safe: the duplicate email is ignored, articles are appended.
func Apply(ctx context.Context, catalog *catalogsvc.Service, accounts *accountsvc.Service) error {
	for _, in := range demoArticles {
		if _, err := catalog.Create(ctx, in); err != nil {
			return fmt.Errorf("seed article %q: %w", in.Name, err)
		}
	}

	_, err := accounts.Create(ctx, accountsvc.CreateInput{
		Name:     "Demo User",
		Email:    "demo@example.com",
		Password: "demo-password",
	})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}
