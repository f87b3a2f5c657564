package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Size: 20}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 2, Size: 20}.Offset())
	assert.Equal(t, 45, PageRequest{Page: 4, Size: 15}.Offset())
}

func TestNewPage_TotalPagesRoundsUp(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 7, PageRequest{Page: 1, Size: 3})
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(7), page.TotalElements)

	page = NewPage([]int{1, 2, 3}, 6, PageRequest{Page: 1, Size: 3})
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPage_NilContentBecomesEmptySlice(t *testing.T) {
	page := NewPage[int](nil, 0, PageRequest{Page: 1, Size: 10})
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
}
