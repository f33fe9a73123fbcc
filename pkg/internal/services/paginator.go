package services

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const DefaultPageSize = 10

// Page describes one window of an ordered listing.
type Page struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	Count       int64 `json:"count"`
	NumPages    int   `json:"num_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

func PageSize() int {
	if size := viper.GetInt("pagination.page_size"); size > 0 {
		return size
	}
	return DefaultPageSize
}

// ParsePageNumber reads the page query value, anything that is not a number means page one.
func ParsePageNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return number
}

// NewPage clamps the requested number into [1, NumPages].
// An empty listing still has a single empty page.
func NewPage(count int64, requested int, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if count < 0 {
		count = 0
	}

	numPages := int((count + int64(size) - 1) / int64(size))
	numPages = max(numPages, 1)
	number := lo.Clamp(requested, 1, numPages)

	return Page{
		Number:      number,
		Size:        size,
		Count:       count,
		NumPages:    numPages,
		HasPrevious: number > 1,
		HasNext:     number < numPages,
	}
}

func (v Page) Offset() int {
	return (v.Number - 1) * v.Size
}

// Paginate cuts the requested page out of an already ordered slice.
func Paginate[T any](items []T, requested int, size int) ([]T, Page) {
	page := NewPage(int64(len(items)), requested, size)
	return lo.Subset(items, page.Offset(), uint(page.Size)), page
}
