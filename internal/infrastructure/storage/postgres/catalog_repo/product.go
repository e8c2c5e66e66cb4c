package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// GetAll retrieves the full non-deleted product table.
func (r *ProductRepo) GetAll(ctx context.Context) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC")

	return r.FindAll(ctx, q)
}

// ListBySize retrieves non-deleted products of one size.
func (r *ProductRepo) ListBySize(ctx context.Context, sizeID id.ID) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"size_id": sizeID}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC")

	return r.FindAll(ctx, q)
}
