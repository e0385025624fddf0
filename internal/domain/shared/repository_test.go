package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOffset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 20, Filter{Page: 2, PageSize: 20}.Offset())
	assert.Equal(t, 90, Filter{Page: 10, PageSize: 10}.Offset())
}

func TestNewPaginated(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		items := make([]int, 5)
		p := NewPaginated(items, 45, 3, 20)

		assert.Equal(t, int64(45), p.Total)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 3, p.Page)
		assert.False(t, p.HasNext)
	})

	t.Run("exact fit", func(t *testing.T) {
		p := NewPaginated(make([]int, 20), 40, 1, 20)
		assert.Equal(t, 2, p.TotalPages)
		assert.True(t, p.HasNext)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPaginated([]int{}, 0, 1, 20)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}
