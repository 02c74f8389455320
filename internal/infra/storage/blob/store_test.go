package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenSQLite(fmt.Sprintf("file:blob_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	return store
}

func TestStores_GetSet(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			s, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t) },
	}

	for name, factory := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			_, err := store.Get(ctx, "studioBookings")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "studioBookings", []byte(`[{"id":"a"}]`)))
			value, err := store.Get(ctx, "studioBookings")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"a"}]`, string(value))

			require.NoError(t, store.Set(ctx, "studioBookings", []byte(`[]`)))
			value, err = store.Get(ctx, "studioBookings")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(value))

			assert.ErrorIs(t, store.Set(ctx, "", []byte("x")), ErrInvalidKey)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, store.Set(context.Background(), ".hidden", nil), ErrInvalidKey)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "studioBookings", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "studioBookings.json", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, "studioBookings.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	store := NewRedisStore(client, "studio:")

	_, err := store.Get(context.Background(), "studioBookings")
	assert.ErrorIs(t, err, ErrRead)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = store.Set(context.Background(), "studioBookings", []byte("[]"))
	assert.ErrorIs(t, err, ErrWrite)
}

func TestPostgresStore_Queries(t *testing.T) {
	query, args, err := buildGetQuery("studioBookings")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM blobs WHERE key = $1", query)
	assert.Equal(t, []interface{}{"studioBookings"}, args)

	query, args, err = buildSetQuery("studioBookings", []byte("[]"))
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO blobs (key,value,updated_at) VALUES ($1,$2,NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
		query,
	)
	assert.Len(t, args, 2)
}
