package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const partyTable = "cat_parties"

// PartyRepo implements party.Repository.
type PartyRepo struct {
	*BaseCatalogRepo[*party.Party]
}

// NewPartyRepo creates a new party repository.
func NewPartyRepo(txManager *postgres.TxManager) *PartyRepo {
	return &PartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			partyTable,
			postgres.ExtractDBColumns[party.Party](),
			func() *party.Party { return &party.Party{} },
		),
	}
}

// ListByType retrieves non-deleted parties of one type.
func (r *PartyRepo) ListByType(ctx context.Context, partyType party.Type) ([]*party.Party, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"type": partyType}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC")

	return r.FindAll(ctx, q)
}

// GetAll retrieves the full non-deleted party table.
func (r *PartyRepo) GetAll(ctx context.Context) ([]*party.Party, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC")

	return r.FindAll(ctx, q)
}

// FindByGSTIN retrieves a party by GSTIN.
func (r *PartyRepo) FindByGSTIN(ctx context.Context, gstin string) (*party.Party, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"gstin": gstin}).
		Where(squirrel.Eq{"is_deleted": false}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("party", gstin)
		}
		return nil, err
	}
	return p, nil
}
