package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      string(p.Category),
		Images:        p.Images,
		IsBestSeller:  p.IsBestSeller,
		IsRecommended: p.IsRecommended,
	}
}

// CreateMany creates a batch of products, all-or-nothing.
//
// @Summary      Create products
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []productRequest  true  "Products to create"
// @Success      201   {object}  Envelope{data=[]productResponse}
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /api/v1/products [post]
func (h *ProductHandler) CreateMany(c echo.Context) error {
	var reqs []productRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product list must not be empty")
	}
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	inputs := make([]ports.CreateProductInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, ports.CreateProductInput{
			Name:          r.Name,
			Description:   r.Description,
			Price:         r.Price,
			Category:      domain.ProductCategory(r.Category),
			Images:        r.Images,
			IsBestSeller:  r.IsBestSeller,
			IsRecommended: r.IsRecommended,
		})
	}

	created, err := h.service.CreateMany(c.Request().Context(), inputs)
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(created))
	for _, p := range created {
		out = append(out, toProductResponse(p))
	}
	return respond(c, http.StatusCreated, "Products created successfully.", out)
}

// GetAll lists the catalog.
//
// @Summary      Get all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]productResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return respond(c, http.StatusOK, "Products retrieved successfully.", out)
}

// GetByID returns a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  Envelope{data=productResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product retrieved successfully.", toProductResponse(*product))
}

// Update overwrites a product's mutable fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  Envelope{data=productResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.UpdateProductInput{
		Description:   req.Description,
		Price:         req.Price,
		Images:        req.Images,
		IsBestSeller:  req.IsBestSeller,
		IsRecommended: req.IsRecommended,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product updated successfully.", toProductResponse(*updated))
}

// Delete removes a product from the catalog.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product deleted successfully.", nil)
}
