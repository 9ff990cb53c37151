package cache

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore()
	key := model.DateKey{Month: 7, Day: 20}

	_, ok := store.Get(key)
	assert.Equal(t, false, ok)

	events := []model.EventRecord{{Text: "Apollo 11 moon landing", Year: 1969, Type: model.TypeEvent}}
	store.Put(key, events)

	got, ok := store.Get(key)
	assert.Equal(t, true, ok)
	assert.Equal(t, events, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_PutDoesNotOverwrite(t *testing.T) {
	store := NewMemoryStore()
	key := model.DateKey{Month: 1, Day: 1}

	first := []model.EventRecord{{Text: "first", Year: 1900, Type: model.TypeEvent}}
	second := []model.EventRecord{{Text: "second", Year: 2000, Type: model.TypeEvent}}

	store.Put(key, first)
	store.Put(key, second)

	got, ok := store.Get(key)
	assert.Equal(t, true, ok)
	assert.Equal(t, first, got)
}

func TestMemoryStore_EmptyListIsCacheable(t *testing.T) {
	store := NewMemoryStore()
	key := model.DateKey{Month: 2, Day: 30}

	store.Put(key, []model.EventRecord{})

	got, ok := store.Get(key)
	assert.Equal(t, true, ok)
	assert.Equal(t, 0, len(got))
}

func TestMemoryStore_All(t *testing.T) {
	store := NewMemoryStore()
	store.Put(model.DateKey{Month: 7, Day: 20}, []model.EventRecord{
		{Text: "Apollo 11 moon landing", Year: 1969, Type: model.TypeEvent},
	})
	store.Put(model.DateKey{Month: 6, Day: 6}, []model.EventRecord{
		{Text: "Normandy landings", Year: 1944, Type: model.TypeEvent},
		{Text: "First drive-in theater opens", Year: 1933, Type: model.TypeEvent},
	})

	all := store.All()
	assert.Equal(t, 3, len(all))
}

func TestDateKey_String(t *testing.T) {
	key := model.DateKey{Month: 7, Day: 4}
	assert.Equal(t, "07-04", key.String())
}
