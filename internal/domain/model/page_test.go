package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	assert.Equal(t, PageRequest{Number: 0, Size: DefaultPageSize}, NewPageRequest(-1, 0))
	assert.Equal(t, PageRequest{Number: 2, Size: MaxPageSize}, NewPageRequest(2, 5000))
	assert.Equal(t, 30, NewPageRequest(3, 10).Offset())
}

func TestNewPageRequestOffsetDoesNotOverflow(t *testing.T) {
	huge := NewPageRequest(math.MaxInt, 50)
	assert.Equal(t, math.MaxInt/50, huge.Number)
	assert.Positive(t, huge.Offset())
	assert.LessOrEqual(t, huge.Offset(), math.MaxInt-49)

	assert.Positive(t, NewPageRequest(math.MaxInt/2+1, 10).Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"48103", "48104"}, NewPageRequest(0, 2), 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.NumberOfElements)

	empty := NewPage[string](nil, NewPageRequest(0, 10), 0)
	assert.NotNil(t, empty.Content)
	assert.Zero(t, empty.TotalPages)
}
