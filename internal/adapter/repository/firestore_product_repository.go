package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}
	if product.PostedAt.IsZero() {
		product.PostedAt = time.Now()
	}

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	query := r.client.Collection("products").Where("sellerEmail", "==", sellerEmail)
	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListAvailableByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	query := r.client.Collection("products").
		Where("categoryId", "==", categoryID).
		Where("available", "==", true)
	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListAdvertised(ctx context.Context) ([]*entity.Product, error) {
	query := r.client.Collection("products").
		Where("advertised", "==", true).
		Where("available", "==", true)
	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) SetAdvertised(ctx context.Context, id string, advertised bool) error {
	_, err := r.client.Collection("products").Doc(id).Set(ctx, map[string]interface{}{
		"advertised": advertised,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *firestoreProductRepository) MarkUnavailable(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Set(ctx, map[string]interface{}{
		"available": false,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update product availability", err)
	}
	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *firestoreProductRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}
