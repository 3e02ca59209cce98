package entity

import (
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one user and holds at most one item per product.
// It is deleted, not emptied, once its contents become an order.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a product line in a cart. Product is only populated on reads that resolve it.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	Subtotal  decimal.Decimal
	Product   *Product
}

// Find returns the index of the item for productID, or -1.
func (c *Cart) Find(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

// Add appends qty units at unitPrice, merging into an existing line.
func (c *Cart) Add(productID uuid.UUID, qty int, unitPrice decimal.Decimal) {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(qty)))

	if i := c.Find(productID); i >= 0 {
		c.Items[i].Quantity += qty
		c.Items[i].Subtotal = c.Items[i].Subtotal.Add(subtotal)

		return
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  qty,
		Subtotal:  subtotal,
	})
}

// Reduce takes qty units off a line and drops the line when it reaches zero.
// The remaining units keep the average price they were added at.
func (c *Cart) Reduce(productID uuid.UUID, qty int) error {
	i := c.Find(productID)
	if i < 0 {
		return domainerrors.ErrCartItemNotFound
	}

	item := &c.Items[i]
	if qty > item.Quantity {
		return domainerrors.ErrExceedsCartQuantity
	}

	remaining := item.Quantity - qty
	if remaining == 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)

		return nil
	}

	item.Subtotal = item.Subtotal.
		Mul(decimal.NewFromInt(int64(remaining))).
		Div(decimal.NewFromInt(int64(item.Quantity))).
		Round(2)
	item.Quantity = remaining

	return nil
}

// Remove drops the line for productID.
func (c *Cart) Remove(productID uuid.UUID) error {
	i := c.Find(productID)
	if i < 0 {
		return domainerrors.ErrCartItemNotFound
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	return nil
}

// Total sums the line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal)
	}

	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
