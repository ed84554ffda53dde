package model

import (
	"math"

	"zipcode-web/pkg/util/numberutils"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Page represents a generic paginated response
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
}

// PageRequest is a zero based page number and a page size
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest clamps number and size to usable values. Number is capped so
// that Offset never overflows.
func NewPageRequest(number int, size int) PageRequest {
	if size <= 0 {
		size = DefaultPageSize
	}
	size = numberutils.ClampInt(size, 1, MaxPageSize)
	return PageRequest{Number: numberutils.ClampInt(number, 0, math.MaxInt/size), Size: size}
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// NewPage creates a new Page instance with calculated values
func NewPage[T any](content []T, request PageRequest, totalElements int64) *Page[T] {
	totalPages := 0
	if totalElements > 0 && request.Size > 0 {
		totalPages = int((totalElements + int64(request.Size) - 1) / int64(request.Size))
	}
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:          content,
		Number:           request.Number,
		Size:             request.Size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}
