package zipcode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	_ "zipcode-web/configs"
	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/gateway/db"
	"zipcode-web/internal/domain/gateway/lock"
	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/model/external"
	"zipcode-web/internal/domain/validator"
	"zipcode-web/internal/infra/database/gorm/gormtest"
)

type mockGeocoding struct {
	mock.Mock
}

func (m *mockGeocoding) Lookup(ctx context.Context, stateAbbrev string, cityName string) (*external.PlacesResponse, error) {
	args := m.Called(ctx, stateAbbrev, cityName)
	response, _ := args.Get(0).(*external.PlacesResponse)
	return response, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishZipRegistered(ctx context.Context, event model.ZipRegisteredEvent) error {
	return m.Called(ctx, event).Error(0)
}

type recordingLocker struct {
	keys []string
}

func (r *recordingLocker) WithLock(_ context.Context, key string, fn func() error) error {
	r.keys = append(r.keys, key)
	return fn()
}

func (r *recordingLocker) Health(context.Context) model.ComponentHealthStatus {
	return model.DisabledComponent()
}

func annArbor() *external.PlacesResponse {
	return &external.PlacesResponse{
		Country:           "United States",
		PlaceName:         "Ann Arbor",
		State:             "Michigan",
		StateAbbreviation: "MI",
		Places: []external.Place{
			{PlaceName: "Ann Arbor", PostCode: "48103"},
			{PlaceName: "Ann Arbor", PostCode: "48104"},
			{PlaceName: "Ann Arbor", PostCode: "48105"},
		},
	}
}

type fixture struct {
	useCase   UseCase
	geocoding *mockGeocoding
	publisher *mockPublisher
	locations db.LocationGateway
	locker    *recordingLocker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		geocoding: &mockGeocoding{},
		publisher: &mockPublisher{},
		locations: db.NewGormLocationGateway(gormtest.New(t)),
		locker:    &recordingLocker{},
	}
	f.useCase = NewZipCodeUseCase(f.geocoding, f.locations, f.locker, f.publisher)
	t.Cleanup(func() {
		f.geocoding.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})
	return f
}

func TestRegisterAnnArbor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Once()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.MatchedBy(func(event model.ZipRegisteredEvent) bool {
		return event.City == "Ann Arbor" && event.StateAbbrev == "MI" && len(event.ZipCodes) == 3 && event.ID != ""
	})).Return(nil).Once()

	registration, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: " Ann Arbor ", State: "mi"})
	require.NoError(t, err)

	assert.Equal(t, "Michigan", registration.State.Name)
	assert.Equal(t, "MI", registration.State.Abbrev)
	assert.Equal(t, "Ann Arbor", registration.City.Name)
	assert.Len(t, registration.Zips, 3)
	assert.Equal(t, []string{"MI:ann arbor"}, f.locker.keys)

	zips, err := f.useCase.ListZips(ctx)
	require.NoError(t, err)
	require.Len(t, zips, 3)
	assert.Equal(t, "48103", zips[0].ZipCode)
	assert.Equal(t, "Ann Arbor", zips[0].City.Name)
}

func TestRegisterTwiceIsDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Twice()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	require.NoError(t, err)

	_, err = f.useCase.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	assert.ErrorIs(t, err, model.ErrDuplicateEntity)

	states, err := f.useCase.ListStates(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 1)

	cities, err := f.useCase.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 1)

	zips, err := f.useCase.ListZips(ctx)
	require.NoError(t, err)
	assert.Len(t, zips, 3, "ZIP codes are inserted once")
}

func TestRegisterRejectsInvalidFormBeforeLookup(t *testing.T) {
	cases := []struct {
		name    string
		form    model.ZipLookupForm
		wantErr error
	}{
		{name: "unknown state", form: model.ZipLookupForm{Name: "Ann Arbor", State: "ZZ"}, wantErr: model.ErrInvalidStateAbbreviation},
		{name: "empty city", form: model.ZipLookupForm{Name: "  ", State: "MI"}, wantErr: model.ErrRequiredFieldMissing},
		{name: "empty state", form: model.ZipLookupForm{Name: "Ann Arbor"}, wantErr: model.ErrRequiredFieldMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.useCase.Register(context.Background(), tc.form)
			assert.ErrorIs(t, err, tc.wantErr)

			var validationErr *validator.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			f.geocoding.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, f.locker.keys)
		})
	}
}

func TestRegisterLookupFailureWritesNothing(t *testing.T) {
	for _, lookupErr := range []error{model.ErrLookupNotFound, model.ErrLookupUnavailable} {
		t.Run(lookupErr.Error(), func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			f.geocoding.On("Lookup", mock.Anything, "MI", "Nowhere").
				Return(nil, fmt.Errorf("%w: test", lookupErr)).Once()

			_, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Nowhere", State: "MI"})
			assert.ErrorIs(t, err, lookupErr)

			states, err := f.useCase.ListStates(ctx)
			require.NoError(t, err)
			assert.Empty(t, states)
		})
	}
}

func TestRegisterKeepsDataWhenPublishFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Once()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

	registration, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	require.NoError(t, err)
	assert.NotZero(t, registration.City.ID)

	cities, err := f.useCase.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}

func TestRegisterRollsBackOnZipFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Once()

	failing := NewZipCodeUseCase(f.geocoding, failingZips{f.locations}, lock.NoopLocker{}, f.publisher)
	_, err := failing.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	require.Error(t, err)

	states, err := f.useCase.ListStates(ctx)
	require.NoError(t, err)
	assert.Empty(t, states, "state insert is rolled back")
	cities, err := f.useCase.ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities, "city insert is rolled back")
}

// failingZips delegates to a real gateway but refuses ZIP inserts inside transactions
type failingZips struct {
	db.LocationGateway
}

func (f failingZips) Transaction(ctx context.Context, fn func(tx db.LocationGateway) error) error {
	return f.LocationGateway.Transaction(ctx, func(tx db.LocationGateway) error {
		return fn(failingZips{tx})
	})
}

func (failingZips) CreateZips(context.Context, []entity.Zip) error {
	return errors.New("disk full")
}

func TestRegisterStateInsertedConcurrently(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	detroit := &external.PlacesResponse{PlaceName: "Detroit", State: "Michigan", StateAbbreviation: "MI",
		Places: []external.Place{{PlaceName: "Detroit", PostCode: "48201"}}}

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Once()
	f.geocoding.On("Lookup", mock.Anything, "MI", "Detroit").Return(detroit, nil).Once()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	require.NoError(t, err)

	// the state row lands between the lookup and the insert
	racing := NewZipCodeUseCase(f.geocoding, staleStateLookup{f.locations}, lock.NoopLocker{}, f.publisher)
	registration, err := racing.Register(ctx, model.ZipLookupForm{Name: "Detroit", State: "MI"})
	require.NoError(t, err)
	assert.Equal(t, "Michigan", registration.State.Name)

	states, err := f.useCase.ListStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, states[0].ID, registration.City.StateID)

	cities, err := f.useCase.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 2)
}

// staleStateLookup never sees stored states, as if another request inserted the row after the read
type staleStateLookup struct {
	db.LocationGateway
}

func (s staleStateLookup) Transaction(ctx context.Context, fn func(tx db.LocationGateway) error) error {
	return s.LocationGateway.Transaction(ctx, func(tx db.LocationGateway) error {
		return fn(staleStateLookup{tx})
	})
}

func (staleStateLookup) FindStateByAbbrev(context.Context, string) (*entity.State, error) {
	return nil, nil
}

func TestSameCityNameDifferentStates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	portlandOR := &external.PlacesResponse{PlaceName: "Portland", State: "Oregon", StateAbbreviation: "OR",
		Places: []external.Place{{PlaceName: "Portland", PostCode: "97201"}}}
	portlandME := &external.PlacesResponse{PlaceName: "Portland", State: "Maine", StateAbbreviation: "ME",
		Places: []external.Place{{PlaceName: "Portland", PostCode: "04101"}}}

	f.geocoding.On("Lookup", mock.Anything, "OR", "Portland").Return(portlandOR, nil).Once()
	f.geocoding.On("Lookup", mock.Anything, "ME", "Portland").Return(portlandME, nil).Once()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Portland", State: "OR"})
	require.NoError(t, err)
	_, err = f.useCase.Register(ctx, model.ZipLookupForm{Name: "Portland", State: "ME"})
	require.NoError(t, err)

	maine, err := f.useCase.StateToZips(ctx, "maine")
	require.NoError(t, err)
	assert.True(t, maine.Found)
	require.Len(t, maine.Zips, 1)
	assert.Equal(t, "04101", maine.Zips[0].ZipCode)
}

func TestStateToZipsUnknownState(t *testing.T) {
	f := newFixture(t)

	result, err := f.useCase.StateToZips(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, "Atlantis", result.StateName)
	assert.NotNil(t, result.Zips)
	assert.Empty(t, result.Zips)

	result, err = f.useCase.StateAbbrevToZips(context.Background(), "mi")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, "MI", result.StateName)
}

func TestFindPages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoding.On("Lookup", mock.Anything, "MI", "Ann Arbor").Return(annArbor(), nil).Once()
	f.publisher.On("PublishZipRegistered", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := f.useCase.Register(ctx, model.ZipLookupForm{Name: "Ann Arbor", State: "MI"})
	require.NoError(t, err)

	zips, err := f.useCase.FindZips(ctx, model.NewPageRequest(0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), zips.TotalElements)
	assert.Equal(t, 2, zips.TotalPages)
	assert.Equal(t, 2, zips.NumberOfElements)

	states, err := f.useCase.FindStates(ctx, model.NewPageRequest(0, 0))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPageSize, states.Size)
	assert.Len(t, states.Content, 1)

	cities, err := f.useCase.FindCities(ctx, model.NewPageRequest(5, 10))
	require.NoError(t, err)
	assert.Empty(t, cities.Content)
	assert.Equal(t, int64(1), cities.TotalElements)
}
