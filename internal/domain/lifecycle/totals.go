package lifecycle

import (
	"fmt"
	"math"
	"strings"

	"autocare_api/internal/domain/entities"
)

// ComputeTotal returns the sum of the item totals plus labor, rounded to cents.
func ComputeTotal(items []entities.LineItem, labor float64) float64 {
	total := labor
	for _, it := range items {
		total += it.Total
	}
	return roundCents(total)
}

// OrderAmount returns the sum of the order item totals, rounded to cents.
func OrderAmount(items []entities.OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Total
	}
	return roundCents(total)
}

func normalizeLineItems(field string, items []entities.LineItem) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		name := fmt.Sprintf("%s[%d]", field, i)
		it.Name = strings.TrimSpace(it.Name)
		if it.Quantity < 0 {
			return nil, invalid(name+".quantity", "must not be negative")
		}
		if it.UnitPrice < 0 || it.Total < 0 {
			return nil, invalid(name+".total", "must not be negative")
		}
		if it.Total == 0 && it.Quantity > 0 {
			it.Total = roundCents(float64(it.Quantity) * it.UnitPrice)
		}
		out = append(out, it)
	}
	return out, nil
}

func normalizeOrderItems(items []entities.OrderItem) ([]entities.OrderItem, error) {
	if len(items) == 0 {
		return nil, invalid("items", "must not be empty")
	}
	out := make([]entities.OrderItem, 0, len(items))
	for i, it := range items {
		name := fmt.Sprintf("items[%d]", i)
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return nil, invalid(name+".name", "is required")
		}
		if it.Quantity <= 0 {
			return nil, invalid(name+".quantity", "must be positive")
		}
		if it.UnitPrice < 0 || it.Total < 0 {
			return nil, invalid(name+".total", "must not be negative")
		}
		if it.Total == 0 {
			it.Total = roundCents(float64(it.Quantity) * it.UnitPrice)
		}
		out = append(out, it)
	}
	return out, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
