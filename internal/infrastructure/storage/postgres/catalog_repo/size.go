package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const sizeTable = "cat_sizes"

// SizeRepo implements size.Repository.
type SizeRepo struct {
	*BaseCatalogRepo[*size.Size]
}

// NewSizeRepo creates a new size repository.
func NewSizeRepo(txManager *postgres.TxManager) *SizeRepo {
	return &SizeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			sizeTable,
			postgres.ExtractDBColumns[size.Size](),
			func() *size.Size { return &size.Size{} },
		),
	}
}

// GetAll retrieves the full non-deleted size table.
func (r *SizeRepo) GetAll(ctx context.Context) ([]*size.Size, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC")

	return r.FindAll(ctx, q)
}
