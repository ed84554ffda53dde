package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "zipcode-web/configs"
	"zipcode-web/internal/domain/model"
)

func TestStateAbbreviationSet(t *testing.T) {
	assert.Equal(t, 50, StateAbbreviationCount())
	assert.True(t, IsStateAbbreviation("MI"))
	assert.True(t, IsStateAbbreviation(" mi "))
	assert.False(t, IsStateAbbreviation("ZZ"))
	assert.False(t, IsStateAbbreviation("DC"))
	assert.False(t, IsStateAbbreviation("PR"))
}

func TestZipLookup(t *testing.T) {
	tests := []struct {
		name      string
		form      model.ZipLookupForm
		wantField string
		wantErr   error
	}{
		{name: "valid", form: model.ZipLookupForm{Name: "Ann Arbor", State: "MI"}},
		{name: "lower case state", form: model.ZipLookupForm{Name: "Ann Arbor", State: "mi"}},
		{name: "empty city", form: model.ZipLookupForm{Name: "", State: "MI"}, wantField: "name", wantErr: model.ErrRequiredFieldMissing},
		{name: "blank city", form: model.ZipLookupForm{Name: "   ", State: "MI"}, wantField: "name", wantErr: model.ErrRequiredFieldMissing},
		{name: "empty state", form: model.ZipLookupForm{Name: "Ann Arbor"}, wantField: "state", wantErr: model.ErrRequiredFieldMissing},
		{name: "unknown state", form: model.ZipLookupForm{Name: "Ann Arbor", State: "ZZ"}, wantField: "state", wantErr: model.ErrInvalidStateAbbreviation},
		{name: "full state name", form: model.ZipLookupForm{Name: "Ann Arbor", State: "Michigan"}, wantField: "state", wantErr: model.ErrInvalidStateAbbreviation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ZipLookup(tt.form)
			if tt.wantErr == nil {
				assert.True(t, result.Valid())
				return
			}
			require.False(t, result.Valid())
			assert.True(t, result.Has(tt.wantField, tt.wantErr))
			assert.NotEmpty(t, result.FieldErrors()[tt.wantField])
		})
	}
}

func TestZipLookupReportsEveryField(t *testing.T) {
	result := ZipLookup(model.ZipLookupForm{})

	require.Len(t, result.Errors, 2)
	assert.True(t, result.Has("name", model.ErrRequiredFieldMissing))
	assert.True(t, result.Has("state", model.ErrRequiredFieldMissing))
	assert.True(t, errors.Is(result.Errors[0], model.ErrRequiredFieldMissing))
}

func TestInvalidStateMessage(t *testing.T) {
	result := StateAbbreviation("state", "zz")

	assert.Equal(t, "zz is not a valid US state abbreviation.", result.FieldErrors()["state"])
}

func TestAuxiliaryForms(t *testing.T) {
	assert.True(t, User(model.UserForm{Username: "jdoe", Fullname: "Jane Doe"}).Valid())

	result := User(model.UserForm{Username: "jdoe"})
	assert.True(t, result.Has("fullname", model.ErrRequiredFieldMissing))
	assert.False(t, result.Has("username", model.ErrRequiredFieldMissing))

	assert.True(t, StateName(model.StateNameForm{State: "Michigan"}).Valid())
	assert.True(t, StateName(model.StateNameForm{State: " "}).Has("state", model.ErrRequiredFieldMissing))
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, ZipLookup(model.ZipLookupForm{Name: "Ann Arbor", State: "MI"}).Err())

	err := ZipLookup(model.ZipLookupForm{Name: "", State: "ZZ"}).Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRequiredFieldMissing)
	assert.ErrorIs(t, err, model.ErrInvalidStateAbbreviation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Result.Errors, 2)
	assert.Contains(t, err.Error(), "name: This field is required.")
}
