package zipcode

import (
	"context"

	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/model"
)

type UseCase interface {
	// Register validates the form, looks the city up and stores it with its ZIP codes.
	// Errors wrap *validator.ValidationError, model.ErrLookupNotFound,
	// model.ErrLookupUnavailable or model.ErrDuplicateEntity.
	Register(ctx context.Context, form model.ZipLookupForm) (*model.Registration, error)

	ListStates(ctx context.Context) ([]entity.State, error)
	ListCities(ctx context.Context) ([]entity.City, error)
	ListZips(ctx context.Context) ([]entity.Zip, error)

	// StateToZips aggregates the ZIP codes of every city of the state with the given full name.
	// An unknown state yields an empty, not found result.
	StateToZips(ctx context.Context, stateName string) (*model.StateZips, error)
	StateAbbrevToZips(ctx context.Context, abbrev string) (*model.StateZips, error)

	FindStates(ctx context.Context, page model.PageRequest) (*model.Page[entity.State], error)
	FindCities(ctx context.Context, page model.PageRequest) (*model.Page[entity.City], error)
	FindZips(ctx context.Context, page model.PageRequest) (*model.Page[entity.Zip], error)
}
