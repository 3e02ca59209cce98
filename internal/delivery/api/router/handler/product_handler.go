package handler

import (
	"log/slog"

	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductPayload is the editable product body. Images are data URIs or URLs.
type ProductPayload struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	NewPrice    decimal.Decimal      `json:"newPrice"`
	OldPrice    decimal.Decimal      `json:"oldPrice"`
	Discount    decimal.Decimal      `json:"discount"`
	Categories  []string             `json:"categories"`
	Section     string               `json:"section"`
	Brand       string               `json:"brand"`
	Quantity    int                  `json:"quantity"`
	Images      []string             `json:"images"`
	Sizes       []string             `json:"sizes"`
	Colors      []string             `json:"colors"`
	Status      entity.ProductStatus `json:"status"`
	Shipping    entity.Shipping      `json:"shipping"`
	Inventory   entity.Inventory     `json:"inventory"`
	Variants    []entity.Variant     `json:"variants"`
	Metadata    entity.Metadata      `json:"metadata"`
}

// ProductRequest wraps the payload the way the storefront admin sends it.
type ProductRequest struct {
	NewProduct *ProductPayload `json:"newProduct" validate:"required"`
}

func (p *ProductPayload) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		NewPrice:    p.NewPrice,
		OldPrice:    p.OldPrice,
		Discount:    p.Discount,
		Categories:  p.Categories,
		Section:     p.Section,
		Brand:       p.Brand,
		Quantity:    p.Quantity,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Status:      p.Status,
		Shipping:    p.Shipping,
		Inventory:   p.Inventory,
		Variants:    p.Variants,
		Metadata:    p.Metadata,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, newProductViews(products), "Products retrieved successfully")
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, newProductView(product), "Product retrieved successfully")
}

func (h *ProductHandler) Create(c echo.Context) error {
	admin, err := identity(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), admin.ID, req.NewProduct.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, newProductView(product), "Product created successfully")
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.NewProduct.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, newProductView(product), "Product updated successfully")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Product deleted successfully")
}
