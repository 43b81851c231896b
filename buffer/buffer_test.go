package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdexgo/stdex/buffer"
)

func TestBuffer_Constructors(t *testing.T) {
	t.Run("zero value and New", func(t *testing.T) {
		var zero buffer.Buffer[int]
		assert.True(t, zero.Empty())
		assert.Equal(t, 0, zero.Len())

		b := buffer.New[int]()
		assert.True(t, b.Empty())
	})

	t.Run("WithCapacity", func(t *testing.T) {
		b := buffer.WithCapacity[int](10)
		assert.True(t, b.Empty())
		assert.Equal(t, 10, b.Cap())
	})

	t.Run("Of", func(t *testing.T) {
		b := buffer.Of(1, 2, 3, 4, 5)
		assert.Equal(t, 5, b.Len())
		assert.Equal(t, 5, b.At(4))
	})

	t.Run("negative capacity panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "buffer: negative capacity", func() {
			buffer.WithCapacity[int](-1)
		})
	})
}

func TestBuffer_AppendInsertRemove(t *testing.T) {
	b := buffer.New[string]()
	b.Append("a", "c")
	b.Insert(1, "b")
	require.Equal(t, []string{"a", "b", "c"}, b.Items())

	b.Insert(b.Len(), "d") // insert at the end appends
	require.Equal(t, []string{"a", "b", "c", "d"}, b.Items())

	removed := b.RemoveAt(1)
	assert.Equal(t, "b", removed)
	assert.Equal(t, []string{"a", "c", "d"}, b.Items())
}

func TestBuffer_AtSet(t *testing.T) {
	b := buffer.Of(1, 2, 3)
	b.Set(1, 20)
	assert.Equal(t, 20, b.At(1))

	assert.PanicsWithValue(t, "buffer: index out of range", func() { b.At(3) })
	assert.PanicsWithValue(t, "buffer: index out of range", func() { b.At(-1) })
	assert.PanicsWithValue(t, "buffer: index out of range", func() { b.Set(3, 0) })
	assert.PanicsWithValue(t, "buffer: index out of range", func() { b.RemoveAt(3) })
	assert.PanicsWithValue(t, "buffer: index out of range", func() { b.Insert(4, 0) })
}

func TestBuffer_IndexFunc(t *testing.T) {
	b := buffer.Of(5, 10, 15)
	assert.Equal(t, 1, b.IndexFunc(func(v int) bool { return v >= 10 }))
	assert.Equal(t, -1, b.IndexFunc(func(v int) bool { return v > 100 }))
}

func TestBuffer_ClearKeepsCapacity(t *testing.T) {
	b := buffer.Of(1, 2, 3)
	capBefore := b.Cap()
	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, capBefore, b.Cap())
}

func TestBuffer_Reserve(t *testing.T) {
	b := buffer.Of(1, 2)
	b.Reserve(16)
	assert.GreaterOrEqual(t, b.Cap(), 16)
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	a := buffer.Of(1, 2, 3)
	b := a.Clone()
	b.Set(0, 100)
	assert.Equal(t, 1, a.At(0))
	assert.Equal(t, 100, b.At(0))
}

func TestBuffer_EqualFunc(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	assert.True(t, buffer.Of(1, 2).EqualFunc(buffer.Of(1, 2), eq))
	assert.False(t, buffer.Of(1, 2).EqualFunc(buffer.Of(2, 1), eq))
	assert.False(t, buffer.Of(1, 2).EqualFunc(buffer.Of(1), eq))
	assert.True(t, buffer.New[int]().EqualFunc(buffer.New[int](), eq))
}
