package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/product-catalog/internal/domain"
	"github.com/spec-kit/product-catalog/internal/events"
	"github.com/spec-kit/product-catalog/internal/media"
	"github.com/spec-kit/product-catalog/internal/repository"
	apperrors "github.com/spec-kit/product-catalog/pkg/util"
)

const pgInvalidTextRepresentation = "22P02"

// productMissing reports whether a store error means the row cannot exist:
// no rows matched, or the id does not even parse as a uuid (SQLSTATE 22P02),
// which Postgres raises before any row lookup.
func productMissing(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}

// ProductCreateInput carries validated fields for a new product plus the
// local path of the uploaded image file.
type ProductCreateInput struct {
	Name        string
	Description string
	Price       float64
	ImagePath   string
}

// ProductUpdateInput carries the optional fields of a partial update.
// ImagePath is non-empty only when a replacement image was attached.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	ImagePath   string
}

// ProductService coordinates catalog reads and writes with image upload.
type ProductService struct {
	products   repository.ProductRepository
	uploader   media.Uploader
	dispatcher events.Dispatcher
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository, uploader media.Uploader, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{products: products, uploader: uploader, dispatcher: dispatcher}
}

// ListProducts returns the whole catalog.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamError("Error fetching products", http.StatusInternalServerError, "", err)
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if productMissing(err) {
			return nil, apperrors.NewNotFound("Product")
		}
		return nil, apperrors.NewUpstreamError("Error fetching product", http.StatusInternalServerError, "", err)
	}
	return product, nil
}

// AddProduct uploads the image, then inserts the product owned by the
// caller. An upload failure aborts the operation before any store write.
func (s *ProductService) AddProduct(ctx context.Context, callerID string, input ProductCreateInput) (*domain.Product, error) {
	url, err := s.uploader.Upload(ctx, input.ImagePath)
	if err != nil {
		return nil, apperrors.NewUpstreamError("Error adding product", http.StatusBadRequest, "", err)
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    url,
		CreatedBy:   callerID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.NewUpstreamError("Error adding product", http.StatusBadRequest, "", err)
	}

	s.publish(ctx, events.EventProductCreated, product.ID, callerID, events.ProductCreatedPayload{
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
	})
	return product, nil
}

// UpdateProduct optionally re-uploads the image, then applies the patch.
// Fields absent from the input leave the stored values unchanged.
func (s *ProductService) UpdateProduct(ctx context.Context, callerID, id string, input ProductUpdateInput) (*domain.Product, error) {
	patch := domain.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	imageChanged := false
	if input.ImagePath != "" {
		url, err := s.uploader.Upload(ctx, input.ImagePath)
		if err != nil {
			return nil, apperrors.NewUpstreamError("Error uploading image", http.StatusInternalServerError, "", err)
		}
		patch.ImageURL = &url
		imageChanged = true
	}

	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if productMissing(err) {
			return nil, apperrors.NewNotFound("Product")
		}
		return nil, apperrors.NewUpstreamError("Error updating product", http.StatusBadRequest, "", err)
	}

	s.publish(ctx, events.EventProductUpdated, product.ID, callerID, events.ProductUpdatedPayload{
		Name:         product.Name,
		Price:        product.Price,
		ImageChanged: imageChanged,
	})
	return product, nil
}

// DeleteProduct removes a product by id.
func (s *ProductService) DeleteProduct(ctx context.Context, callerID, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if productMissing(err) {
			return apperrors.NewNotFound("Product")
		}
		return apperrors.NewUpstreamError("Error deleting product", http.StatusInternalServerError, "", err)
	}

	s.publish(ctx, events.EventProductDeleted, id, callerID, nil)
	return nil
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, productID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		ProductID: productID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
