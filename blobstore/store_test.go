package blobstore

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest builds each BlobStore implementation against a fresh backend.
func storesUnderTest(t *testing.T) map[string]BlobStore {
	t.Helper()

	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return map[string]BlobStore{
		"Memory": NewMemoryStore(),
		"Local":  local,
	}
}

func TestBlobStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "batch-1.bin", []byte{1, 2, 3}))

			got, err := store.Get(ctx, "batch-1.bin")
			require.NoError(t, err)
			assert.Equal(t, []byte{1, 2, 3}, got)
		})
	}
}

func TestBlobStoreOverwrite(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "b", []byte("old")))
			require.NoError(t, store.Put(ctx, "b", []byte("new")))

			got, err := store.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, []byte("new"), got)
		})
	}
}

func TestBlobStoreNotFound(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBlobStoreDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "b", []byte("x")))
			require.NoError(t, store.Delete(ctx, "b"))

			_, err := store.Get(ctx, "b")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing blob is not an error.
			assert.NoError(t, store.Delete(ctx, "b"))
		})
	}
}

func TestBlobStoreList(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "nouns/a.bin", []byte("a")))
			require.NoError(t, store.Put(ctx, "nouns/b.bin", []byte("b")))
			require.NoError(t, store.Put(ctx, "verbs/c.bin", []byte("c")))

			names, err := store.List(ctx, "nouns/")
			require.NoError(t, err)
			sort.Strings(names)
			assert.Equal(t, []string{"nouns/a.bin", "nouns/b.bin"}, names)

			all, err := store.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte{1, 2, 3}
	require.NoError(t, store.Put(ctx, "b", data))
	data[0] = 99

	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, byte(1), got[0])

	// Mutating the returned slice must not leak back either.
	got[1] = 98
	again, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, byte(2), again[1])
}
