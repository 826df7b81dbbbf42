package datamap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsertAndLookup(t *testing.T) {
	m := New[string]()

	_, err := m.Insert(10, Localized{"en": "Iron Sword", "ja": "鉄刀"}, "melee")
	require.NoError(t, err)
	_, err = m.Insert(11, Localized{"en": "Steel Sword"}, "melee")
	require.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		e, ok := m.ByID(10)
		require.True(t, ok)
		assert.Equal(t, "Iron Sword", e.Name.En())
	})

	t.Run("ByName", func(t *testing.T) {
		id, ok := m.IDOf("en", "Steel Sword")
		require.True(t, ok)
		assert.Equal(t, 11, id)

		id, ok = m.IDOf("ja", "鉄刀")
		require.True(t, ok)
		assert.Equal(t, 10, id)

		assert.False(t, m.HasName("en", "Nonexistent"))
	})

	t.Run("MissingID", func(t *testing.T) {
		_, ok := m.ByID(99)
		assert.False(t, ok)
	})
}

func TestMapInsertionOrder(t *testing.T) {
	m := New[int]()
	// Deliberately out of id order; iteration must follow insertion order.
	ids := []int{5, 2, 9, 1}
	for i, id := range ids {
		_, err := m.Insert(id, Localized{"en": string(rune('a' + i))}, i)
		require.NoError(t, err)
	}

	entries := m.Entries()
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, ids[i], e.ID)
	}
	assert.Equal(t, 9, m.MaxID())
}

func TestMapConflicts(t *testing.T) {
	t.Run("DuplicateID", func(t *testing.T) {
		m := New[string]()
		_, err := m.Insert(1, Localized{"en": "A"}, "")
		require.NoError(t, err)
		_, err = m.Insert(1, Localized{"en": "B"}, "")
		assert.Error(t, err)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		m := New[string]()
		_, err := m.Insert(1, Localized{"en": "A"}, "")
		require.NoError(t, err)
		_, err = m.Insert(2, Localized{"en": "A"}, "")
		assert.Error(t, err)
	})

	t.Run("EmptyNamesNotIndexed", func(t *testing.T) {
		m := New[string]()
		_, err := m.Insert(1, Localized{"en": "A", "fr": ""}, "")
		require.NoError(t, err)
		_, err = m.Insert(2, Localized{"en": "B", "fr": ""}, "")
		assert.NoError(t, err, "empty translations must not collide")
		assert.False(t, m.HasName("fr", ""))
	})
}
