package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/product-catalog/internal/api/dto"
	"github.com/spec-kit/product-catalog/internal/auth"
	"github.com/spec-kit/product-catalog/internal/service"
	"github.com/spec-kit/product-catalog/internal/validation"
	apperrors "github.com/spec-kit/product-catalog/pkg/util"
)

// ProductsHandler manages catalog endpoints.
type ProductsHandler struct {
	service *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{service: productService}
}

// List GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(items)
}

// Get GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Add POST /api/add-product. Requires a multipart file field "image";
// without it the request fails before any store access.
func (h *ProductsHandler) Add(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	var req dto.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	if errs := validation.Run(
		validation.Required("name", req.Name, "Name is required"),
		validation.Required("description", req.Description, "Description is required"),
		validation.MinFloat("price", req.Price, 0, "Price must be a positive number"),
	); len(errs) > 0 {
		return apperrors.NewValidationError(errs)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewBadRequest("please upload image")
	}

	tempPath, err := saveTempFile(c, file)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer os.Remove(tempPath)

	product, err := h.service.AddProduct(c.Context(), caller.ID, service.ProductCreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   tempPath,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewProductResponse(product))
}

// Update PATCH /api/products/:id. Every field is optional; the image is
// re-uploaded only when a file is attached.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	if errs := validation.Run(
		validation.RequiredIfPresent("name", req.Name, "Name cannot be empty"),
		validation.RequiredIfPresent("description", req.Description, "Description cannot be empty"),
		validation.MinFloatIfPresent("price", req.Price, 0, "Price must be a positive number"),
	); len(errs) > 0 {
		return apperrors.NewValidationError(errs)
	}

	input := service.ProductUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if file, err := c.FormFile("image"); err == nil {
		tempPath, err := saveTempFile(c, file)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		defer os.Remove(tempPath)
		input.ImagePath = tempPath
	}

	product, err := h.service.UpdateProduct(c.Context(), caller.ID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Delete DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	if err := h.service.DeleteProduct(c.Context(), caller.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted successfully"})
}

// saveTempFile writes the multipart upload to a unique temp path so the
// image host receives a local file path. Callers own the cleanup.
func saveTempFile(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
