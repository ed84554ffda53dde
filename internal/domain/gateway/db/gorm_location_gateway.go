package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/model"
)

type GormLocationGateway struct {
	DB *gorm.DB
}

var _ LocationGateway = (*GormLocationGateway)(nil)

func NewGormLocationGateway(db *gorm.DB) *GormLocationGateway {
	return &GormLocationGateway{DB: db}
}

func (gateway *GormLocationGateway) FindStateByAbbrev(ctx context.Context, abbrev string) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.WithContext(ctx).
		Where("abbrev = ?", strings.ToUpper(strings.TrimSpace(abbrev))).
		Take(&state).Error
	return firstOrNil(&state, err)
}

// FindStateByName matches the full state name ignoring case and surrounding spaces
func (gateway *GormLocationGateway) FindStateByName(ctx context.Context, name string) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("id").
		Take(&state).Error
	return firstOrNil(&state, err)
}

func (gateway *GormLocationGateway) FindCityByNameAndState(ctx context.Context, name string, stateID uint) (*entity.City, error) {
	var city entity.City
	err := gateway.DB.WithContext(ctx).
		Preload("State").
		Where("name = ? AND state_id = ?", name, stateID).
		Take(&city).Error
	return firstOrNil(&city, err)
}

func (gateway *GormLocationGateway) FindAllStates(ctx context.Context) ([]entity.State, error) {
	states := make([]entity.State, 0)
	err := gateway.DB.WithContext(ctx).Order("id").Find(&states).Error
	return states, err
}

func (gateway *GormLocationGateway) FindAllCities(ctx context.Context) ([]entity.City, error) {
	cities := make([]entity.City, 0)
	err := gateway.DB.WithContext(ctx).Preload("State").Order("id").Find(&cities).Error
	return cities, err
}

func (gateway *GormLocationGateway) FindAllZips(ctx context.Context) ([]entity.Zip, error) {
	zips := make([]entity.Zip, 0)
	err := gateway.DB.WithContext(ctx).Preload("City.State").Order("id").Find(&zips).Error
	return zips, err
}

// FindZipsByStateID returns the ZIP codes of every city of the state, grouped by city
func (gateway *GormLocationGateway) FindZipsByStateID(ctx context.Context, stateID uint) ([]entity.Zip, error) {
	zips := make([]entity.Zip, 0)
	err := gateway.DB.WithContext(ctx).
		Preload("City.State").
		Joins("JOIN cities ON cities.id = zips.city_id").
		Where("cities.state_id = ?", stateID).
		Order("cities.id, zips.id").
		Find(&zips).Error
	return zips, err
}

func (gateway *GormLocationGateway) FindStatesPage(ctx context.Context, page model.PageRequest) ([]entity.State, int64, error) {
	states := make([]entity.State, 0)
	total, err := findPage(gateway.DB.WithContext(ctx), &entity.State{}, page, &states)
	return states, total, err
}

func (gateway *GormLocationGateway) FindCitiesPage(ctx context.Context, page model.PageRequest) ([]entity.City, int64, error) {
	cities := make([]entity.City, 0)
	total, err := findPage(gateway.DB.WithContext(ctx), &entity.City{}, page, &cities, "State")
	return cities, total, err
}

func (gateway *GormLocationGateway) FindZipsPage(ctx context.Context, page model.PageRequest) ([]entity.Zip, int64, error) {
	zips := make([]entity.Zip, 0)
	total, err := findPage(gateway.DB.WithContext(ctx), &entity.Zip{}, page, &zips, "City.State")
	return zips, total, err
}

func (gateway *GormLocationGateway) EnsureState(ctx context.Context, state *entity.State) error {
	db := gateway.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "abbrev"}}, DoNothing: true}).
		Create(state).Error
	if err != nil {
		return err
	}

	var stored entity.State
	if err = db.Where("abbrev = ?", state.Abbrev).Take(&stored).Error; err != nil {
		return err
	}
	*state = stored
	return nil
}

func (gateway *GormLocationGateway) CreateCity(ctx context.Context, city *entity.City) error {
	return translateCreateError(gateway.DB.WithContext(ctx).Omit("State", "Zips").Create(city).Error, "city "+city.Name)
}

func (gateway *GormLocationGateway) CreateZips(ctx context.Context, zips []entity.Zip) error {
	if len(zips) == 0 {
		return nil
	}
	return translateCreateError(gateway.DB.WithContext(ctx).Omit("City").Create(&zips).Error, "zips")
}

func (gateway *GormLocationGateway) Transaction(ctx context.Context, fn func(tx LocationGateway) error) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormLocationGateway{DB: tx})
	})
}

// findPage counts every row of modelValue, then loads one page ordered by id into dest
func findPage(db *gorm.DB, modelValue any, page model.PageRequest, dest any, preloads ...string) (int64, error) {
	var total int64
	if err := db.Model(modelValue).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	query := db.Order("id").Offset(page.Offset()).Limit(page.Size)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	return total, query.Find(dest).Error
}

func firstOrNil[T any](value *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func translateCreateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", model.ErrDuplicateEntity, what)
	}
	return err
}
