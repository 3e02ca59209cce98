package handler

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is a customer without secrets.
type UserView struct {
	ID                uuid.UUID   `json:"id"`
	FullName          string      `json:"fullname"`
	Username          string      `json:"username,omitempty"`
	Email             string      `json:"email"`
	Phone             string      `json:"phoneNumber,omitempty"`
	Photo             string      `json:"photo,omitempty"`
	Notifications     bool        `json:"notifications"`
	PurchasedProducts []uuid.UUID `json:"purchasedProducts"`
	CreatedAt         time.Time   `json:"createdAt"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	purchased := u.PurchasedProducts
	if purchased == nil {
		purchased = []uuid.UUID{}
	}

	return &UserView{
		ID:                u.ID,
		FullName:          u.FullName,
		Username:          u.Username,
		Email:             u.Email,
		Phone:             u.Phone,
		Photo:             u.Photo,
		Notifications:     u.Notifications,
		PurchasedProducts: purchased,
		CreatedAt:         u.CreatedAt,
	}
}

// AdminView is an admin without secrets.
type AdminView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAdminView(a *entity.Admin) *AdminView {
	if a == nil {
		return nil
	}

	return &AdminView{
		ID:        a.ID,
		FullName:  a.FullName,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

type ProductView struct {
	ID          uuid.UUID            `json:"id"`
	AdminID     uuid.UUID            `json:"adminId"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	NewPrice    decimal.Decimal      `json:"newPrice"`
	OldPrice    decimal.Decimal      `json:"oldPrice"`
	Discount    decimal.Decimal      `json:"discount"`
	Categories  []string             `json:"categories"`
	Section     string               `json:"section,omitempty"`
	Brand       string               `json:"brand,omitempty"`
	Quantity    int                  `json:"quantity"`
	Images      []string             `json:"images"`
	Sizes       []string             `json:"sizes"`
	Colors      []string             `json:"colors"`
	SalesCount  int                  `json:"salesCount"`
	Status      entity.ProductStatus `json:"status"`
	Shipping    entity.Shipping      `json:"shipping"`
	Inventory   entity.Inventory     `json:"inventory"`
	Variants    []entity.Variant     `json:"variants"`
	Metadata    entity.Metadata      `json:"metadata"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func newProductView(p *entity.Product) *ProductView {
	if p == nil {
		return nil
	}

	return &ProductView{
		ID:          p.ID,
		AdminID:     p.AdminID,
		Name:        p.Name,
		Description: p.Description,
		NewPrice:    p.NewPrice,
		OldPrice:    p.OldPrice,
		Discount:    p.Discount,
		Categories:  orEmpty(p.Categories),
		Section:     p.Section,
		Brand:       p.Brand,
		Quantity:    p.Quantity,
		Images:      orEmpty(p.Images),
		Sizes:       orEmpty(p.Sizes),
		Colors:      orEmpty(p.Colors),
		SalesCount:  p.SalesCount,
		Status:      p.Status,
		Shipping:    p.Shipping,
		Inventory:   p.Inventory,
		Variants:    orEmpty(p.Variants),
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	return views
}

type CartItemView struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Product   *ProductView    `json:"product,omitempty"`
}

type CartView struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"userId"`
	Items  []*CartItemView `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

func newCartItemViews(items []entity.CartItem) []*CartItemView {
	views := make([]*CartItemView, 0, len(items))
	for i := range items {
		views = append(views, &CartItemView{
			ProductID: items[i].ProductID,
			Quantity:  items[i].Quantity,
			Subtotal:  items[i].Subtotal,
			Product:   newProductView(items[i].Product),
		})
	}

	return views
}

func newCartView(c *entity.Cart) *CartView {
	return &CartView{
		ID:     c.ID,
		UserID: c.UserID,
		Items:  newCartItemViews(c.Items),
		Total:  c.Total(),
	}
}

type OrderView struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"userId"`
	TransactionRef string             `json:"transactionRef"`
	Lines          []entity.OrderLine `json:"products"`
	Total          decimal.Decimal    `json:"totalAmount"`
	Status         entity.OrderStatus `json:"status"`
	Backordered    bool               `json:"backordered"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func newOrderView(o *entity.Order) *OrderView {
	if o == nil {
		return nil
	}

	return &OrderView{
		ID:             o.ID,
		UserID:         o.UserID,
		TransactionRef: o.TransactionRef,
		Lines:          orEmpty(o.Lines),
		Total:          o.Total,
		Status:         o.Status,
		Backordered:    o.Backordered,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return views
}

type TransactionView struct {
	Reference   string                   `json:"reference"`
	Amount      decimal.Decimal          `json:"amount"`
	Currency    string                   `json:"currency"`
	Status      entity.TransactionStatus `json:"status"`
	Lines       []entity.TransactionLine `json:"lines"`
	PaymentLink string                   `json:"paymentLink"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func newTransactionView(t *entity.Transaction) *TransactionView {
	if t == nil {
		return nil
	}

	return &TransactionView{
		Reference:   t.Reference,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Status:      t.Status,
		Lines:       orEmpty(t.Lines),
		PaymentLink: t.PaymentLink,
		CreatedAt:   t.CreatedAt,
	}
}
