package tweets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 7, NormalizePage(7))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantPage   int
	}{
		{"first page", 1, 10, 0, 1},
		{"second page", 2, 10, 10, 2},
		{"zero coerced to first", 0, 10, 0, 1},
		{"negative coerced to first", -5, 10, 0, 1},
		{"users page size", 3, 8, 16, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, page := PageWindow(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestHomeFilterIncludesSelf(t *testing.T) {
	filter := HomeFilter(5, []int64{10, 11})
	assert.Equal(t, []int64{5, 10, 11}, filter)
}

func TestHomeFilterNoFollows(t *testing.T) {
	// A fresh account still sees its own tweets.
	filter := HomeFilter(5, nil)
	assert.Equal(t, []int64{5}, filter)
}
