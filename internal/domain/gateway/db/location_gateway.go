package db

import (
	"context"

	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/model"
)

// LocationGateway persists states, cities and their ZIP codes.
// Find* methods return nil, nil when nothing matches.
type LocationGateway interface {
	FindStateByAbbrev(ctx context.Context, abbrev string) (*entity.State, error)
	FindStateByName(ctx context.Context, name string) (*entity.State, error)
	FindCityByNameAndState(ctx context.Context, name string, stateID uint) (*entity.City, error)

	FindAllStates(ctx context.Context) ([]entity.State, error)
	FindAllCities(ctx context.Context) ([]entity.City, error)
	FindAllZips(ctx context.Context) ([]entity.Zip, error)
	FindZipsByStateID(ctx context.Context, stateID uint) ([]entity.Zip, error)

	FindStatesPage(ctx context.Context, page model.PageRequest) ([]entity.State, int64, error)
	FindCitiesPage(ctx context.Context, page model.PageRequest) ([]entity.City, int64, error)
	FindZipsPage(ctx context.Context, page model.PageRequest) ([]entity.Zip, int64, error)

	// EnsureState inserts state unless its abbreviation is already stored,
	// then loads the stored row into state
	EnsureState(ctx context.Context, state *entity.State) error

	// Create* return model.ErrDuplicateEntity when a unique index rejects the row
	CreateCity(ctx context.Context, city *entity.City) error
	CreateZips(ctx context.Context, zips []entity.Zip) error

	// Transaction runs fn against a gateway bound to a single transaction,
	// committed when fn returns nil and rolled back otherwise
	Transaction(ctx context.Context, fn func(tx LocationGateway) error) error
}
