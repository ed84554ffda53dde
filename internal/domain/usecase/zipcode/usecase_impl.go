package zipcode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/gateway/api"
	"zipcode-web/internal/domain/gateway/db"
	"zipcode-web/internal/domain/gateway/lock"
	"zipcode-web/internal/domain/gateway/queue"
	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/model/external"
	"zipcode-web/internal/domain/validator"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
)

type zipCodeUseCase struct {
	geocoding api.GeocodingGateway
	locations db.LocationGateway
	locker    lock.Locker
	publisher queue.EventPublisher
	now       func() time.Time
}

func NewZipCodeUseCase(
	geocoding api.GeocodingGateway,
	locations db.LocationGateway,
	locker lock.Locker,
	publisher queue.EventPublisher,
) UseCase {
	return &zipCodeUseCase{
		geocoding: geocoding,
		locations: locations,
		locker:    locker,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *zipCodeUseCase) Register(ctx context.Context, form model.ZipLookupForm) (*model.Registration, error) {
	if err := validator.ZipLookup(form).Err(); err != nil {
		return nil, err
	}

	cityName := strings.TrimSpace(form.Name)
	abbrev := strings.ToUpper(strings.TrimSpace(form.State))

	log.Info(msg.GetMessage("zipcode.lookup-start", cityName, abbrev))
	places, err := uc.geocoding.Lookup(ctx, abbrev, cityName)
	if err != nil {
		return nil, err
	}

	var registration *model.Registration
	lockKey := abbrev + ":" + strings.ToLower(places.PlaceName)
	err = uc.locker.WithLock(ctx, lockKey, func() error {
		return uc.locations.Transaction(ctx, func(tx db.LocationGateway) error {
			var reconcileErr error
			registration, reconcileErr = reconcile(ctx, tx, abbrev, places)
			return reconcileErr
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("zipcode.reconciled",
		registration.City.Name, registration.State.Abbrev, registration.State.ID, registration.City.ID, len(registration.Zips)))

	uc.publishRegistered(ctx, registration)
	return registration, nil
}

// reconcile finds or creates the state, creates the city and its ZIP codes.
// An existing city aborts with model.ErrDuplicateEntity before anything else is written.
func reconcile(ctx context.Context, tx db.LocationGateway, abbrev string, places *external.PlacesResponse) (*model.Registration, error) {
	state, err := tx.FindStateByAbbrev(ctx, abbrev)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &entity.State{Name: places.State, Abbrev: abbrev}
		if err = tx.EnsureState(ctx, state); err != nil {
			return nil, err
		}
	}

	existing, err := tx.FindCityByNameAndState(ctx, places.PlaceName, state.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrDuplicateEntity, existing)
	}

	city := &entity.City{Name: places.PlaceName, StateID: state.ID}
	if err = tx.CreateCity(ctx, city); err != nil {
		return nil, err
	}

	zips := make([]entity.Zip, 0, len(places.Places))
	for _, code := range places.PostCodes() {
		zips = append(zips, entity.Zip{ZipCode: strings.TrimSpace(code), CityID: city.ID})
	}
	if err = tx.CreateZips(ctx, zips); err != nil {
		return nil, err
	}

	city.State = state
	return &model.Registration{State: *state, City: *city, Zips: zips}, nil
}

// publishRegistered announces the committed registration. Failures are logged only.
func (uc *zipCodeUseCase) publishRegistered(ctx context.Context, registration *model.Registration) {
	codes := make([]string, 0, len(registration.Zips))
	for _, zip := range registration.Zips {
		codes = append(codes, zip.ZipCode)
	}

	event := model.ZipRegisteredEvent{
		ID:           uuid.NewString(),
		State:        registration.State.Name,
		StateAbbrev:  registration.State.Abbrev,
		City:         registration.City.Name,
		ZipCodes:     codes,
		RegisteredAt: uc.now().UTC().Format(time.RFC3339),
	}

	if err := uc.publisher.PublishZipRegistered(ctx, event); err != nil {
		log.Error(msg.GetMessage("zipcode.event-failed", registration.City.ID, err), zap.String("eventId", event.ID))
	}
}

func (uc *zipCodeUseCase) ListStates(ctx context.Context) ([]entity.State, error) {
	return uc.locations.FindAllStates(ctx)
}

func (uc *zipCodeUseCase) ListCities(ctx context.Context) ([]entity.City, error) {
	return uc.locations.FindAllCities(ctx)
}

func (uc *zipCodeUseCase) ListZips(ctx context.Context) ([]entity.Zip, error) {
	return uc.locations.FindAllZips(ctx)
}

func (uc *zipCodeUseCase) StateToZips(ctx context.Context, stateName string) (*model.StateZips, error) {
	state, err := uc.locations.FindStateByName(ctx, stateName)
	if err != nil {
		return nil, err
	}
	return uc.zipsOf(ctx, strings.TrimSpace(stateName), state)
}

func (uc *zipCodeUseCase) StateAbbrevToZips(ctx context.Context, abbrev string) (*model.StateZips, error) {
	state, err := uc.locations.FindStateByAbbrev(ctx, abbrev)
	if err != nil {
		return nil, err
	}
	return uc.zipsOf(ctx, strings.ToUpper(strings.TrimSpace(abbrev)), state)
}

func (uc *zipCodeUseCase) zipsOf(ctx context.Context, requested string, state *entity.State) (*model.StateZips, error) {
	if state == nil {
		return &model.StateZips{StateName: requested, Zips: []entity.Zip{}}, nil
	}

	zips, err := uc.locations.FindZipsByStateID(ctx, state.ID)
	if err != nil {
		return nil, err
	}
	return &model.StateZips{StateName: state.Name, Found: true, Zips: zips}, nil
}

func (uc *zipCodeUseCase) FindStates(ctx context.Context, page model.PageRequest) (*model.Page[entity.State], error) {
	states, total, err := uc.locations.FindStatesPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return model.NewPage(states, page, total), nil
}

func (uc *zipCodeUseCase) FindCities(ctx context.Context, page model.PageRequest) (*model.Page[entity.City], error) {
	cities, total, err := uc.locations.FindCitiesPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return model.NewPage(cities, page, total), nil
}

func (uc *zipCodeUseCase) FindZips(ctx context.Context, page model.PageRequest) (*model.Page[entity.Zip], error) {
	zips, total, err := uc.locations.FindZipsPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return model.NewPage(zips, page, total), nil
}
