package pagination

import (
	"fmt"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
)

func makePosts(n int) []*models.Post {
	posts := make([]*models.Post, n)
	for i := range posts {
		posts[i] = &models.Post{ID: uint(i + 1), Text: fmt.Sprintf("post %d", i+1)}
	}
	return posts
}

func TestPaginatePageCounts(t *testing.T) {
	tests := []struct {
		name           string
		totalItems     int
		pageSize       int
		wantTotalPages int
		wantLastLen    int
	}{
		{"exact multiple", 20, 10, 2, 10},
		{"remainder on last page", 15, 10, 2, 5},
		{"single short page", 3, 10, 1, 3},
		{"empty listing", 0, 10, 1, 0},
		{"page size one", 4, 1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := makePosts(tt.totalItems)
			page := Paginate(posts, tt.pageSize, tt.wantTotalPages)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.totalItems, page.TotalItems)
			assert.Len(t, page.Items, tt.wantLastLen)
		})
	}
}

func TestPaginateClamping(t *testing.T) {
	posts := makePosts(15)

	tests := []struct {
		name       string
		page       int
		wantNumber int
	}{
		{"zero clamps to first", 0, 1},
		{"negative clamps to first", -3, 1},
		{"past the end clamps to last", 99, 2},
		{"valid page untouched", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(posts, 10, tt.page)
			assert.Equal(t, tt.wantNumber, page.Number)
		})
	}
}

func TestPaginateMetadata(t *testing.T) {
	posts := makePosts(25)

	first := Paginate(posts, 10, 1)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)
	assert.Equal(t, uint(1), first.Items[0].ID)

	middle := Paginate(posts, 10, 2)
	assert.True(t, middle.HasNext)
	assert.True(t, middle.HasPrevious)
	assert.Equal(t, uint(11), middle.Items[0].ID)

	last := Paginate(posts, 10, 3)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrevious)
	assert.Len(t, last.Items, 5)
}

func TestPaginateIsStable(t *testing.T) {
	posts := makePosts(12)

	a := Paginate(posts, 5, 2)
	b := Paginate(posts, 5, 2)
	assert.Equal(t, a, b)
	// The input slice is untouched.
	assert.Len(t, posts, 12)
	assert.Equal(t, uint(1), posts[0].ID)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("1.5"))
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, -2, ParsePage("-2"))
}
