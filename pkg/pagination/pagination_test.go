package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClampsRequestedPage(t *testing.T) {
	// 25 rows at size 10 gives 3 pages
	assert.Equal(t, 1, Resolve(0, 10, 25).Number)
	assert.Equal(t, 1, Resolve(-3, 10, 25).Number)
	assert.Equal(t, 2, Resolve(2, 10, 25).Number)
	assert.Equal(t, 3, Resolve(99, 10, 25).Number)
}

func TestResolveEmptyTotalKeepsPageOne(t *testing.T) {
	page := Resolve(5, 10, 0)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, page.Offset())
}

func TestResolveDefaultsSize(t *testing.T) {
	page := Resolve(1, 0, 25)
	assert.Equal(t, DefaultPageSize, page.Size)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Resolve(1, 10, 25).Offset())
	assert.Equal(t, 10, Resolve(2, 10, 25).Offset())
	assert.Equal(t, 20, Resolve(3, 10, 25).Offset())
}

func TestMeta(t *testing.T) {
	meta := Resolve(2, 10, 25).Meta(25)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	empty := Resolve(1, 10, 0).Meta(0)
	assert.Equal(t, 1, empty.TotalPages)
}
