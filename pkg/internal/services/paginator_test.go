package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewPageCountsPages(t *testing.T) {
	page := NewPage(28, 3, 10)

	assert.Equal(t, 3, page.NumPages)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 20, page.Offset())
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)

	assert.Equal(t, 3, NewPage(30, 1, 10).NumPages)
	assert.Equal(t, 4, NewPage(31, 1, 10).NumPages)
}

func TestNewPageClampsRequestedNumber(t *testing.T) {
	cases := map[int]int{
		-5: 1,
		0:  1,
		1:  1,
		2:  2,
		3:  3,
		99: 3,
	}
	for requested, expected := range cases {
		assert.Equal(t, expected, NewPage(28, requested, 10).Number, "requested page %d", requested)
	}
}

func TestNewPageEmptyListing(t *testing.T) {
	page := NewPage(0, 4, 10)

	assert.Equal(t, 1, page.NumPages)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, page.Offset())
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, ParsePageNumber(""))
	assert.Equal(t, 1, ParsePageNumber("abc"))
	assert.Equal(t, 1, ParsePageNumber("2.5"))
	assert.Equal(t, 3, ParsePageNumber("3"))
	assert.Equal(t, -2, ParsePageNumber("-2"))
}

func TestPaginateSlices(t *testing.T) {
	items := lo.Range(28)

	first, page := Paginate(items, 1, 10)
	assert.Equal(t, lo.Range(10), first)
	assert.True(t, page.HasNext)

	last, page := Paginate(items, 3, 10)
	assert.Len(t, last, 8)
	assert.Equal(t, 20, last[0])
	assert.False(t, page.HasNext)

	overflow, page := Paginate(items, 7, 10)
	assert.Equal(t, last, overflow)
	assert.Equal(t, 3, page.Number)
}

func TestPaginateCoversEveryItemOnce(t *testing.T) {
	items := lo.Range(47)

	var joined []int
	_, page := Paginate(items, 1, 10)
	for number := 1; number <= page.NumPages; number++ {
		chunk, _ := Paginate(items, number, 10)
		joined = append(joined, chunk...)
	}

	assert.Equal(t, items, joined)
}

func TestPaginateEmpty(t *testing.T) {
	chunk, page := Paginate([]string{}, 1, 10)

	assert.Empty(t, chunk)
	assert.Equal(t, 1, page.NumPages)
}

func TestPageSizeFallsBack(t *testing.T) {
	viper.Set("pagination.page_size", 0)
	assert.Equal(t, DefaultPageSize, PageSize())

	viper.Set("pagination.page_size", 5)
	assert.Equal(t, 5, PageSize())

	viper.Set("pagination.page_size", DefaultPageSize)
}
