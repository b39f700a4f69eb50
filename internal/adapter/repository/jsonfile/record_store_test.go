package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

func newRecordStore(t *testing.T) *RecordStore {
	t.Helper()
	return NewRecordStore(filepath.Join(t.TempDir(), "posts.json"), zap.NewNop())
}

func TestRecordStoreLoadAllMissingFile(t *testing.T) {
	store := newRecordStore(t)
	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordStoreAppend(t *testing.T) {
	store := newRecordStore(t)
	ctx := context.Background()

	stored, err := store.Append(ctx, map[string]any{"text": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", stored["text"])
	assert.NotEmpty(t, stored["id"])

	records, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, stored["id"], records[0]["id"])
}

func TestRecordStoreUpdate(t *testing.T) {
	store := newRecordStore(t)
	ctx := context.Background()

	stored, err := store.Append(ctx, map[string]any{"text": "hello", "tag": "a"})
	require.NoError(t, err)
	id := stored["id"].(string)

	updated, err := store.Update(ctx, id, map[string]any{"text": "bye", "id": "hijack"})
	require.NoError(t, err)
	assert.Equal(t, "bye", updated["text"])
	assert.Equal(t, "a", updated["tag"])
	assert.Equal(t, id, updated["id"], "id field must not be overwritable")
}

func TestRecordStoreUpdateNotFound(t *testing.T) {
	store := newRecordStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, map[string]any{"text": "hello"})
	require.NoError(t, err)

	_, err = store.Update(ctx, "no-such-id", map[string]any{"text": "bye"})
	assert.ErrorIs(t, err, domain.ErrPostNotFound)

	records, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1, "failed update must leave the container unchanged")
}

func TestRecordStoreDelete(t *testing.T) {
	store := newRecordStore(t)
	ctx := context.Background()

	stored, err := store.Append(ctx, map[string]any{"text": "hello"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, stored["id"].(string)))

	records, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, store.Delete(ctx, stored["id"].(string)), domain.ErrPostNotFound)
}

// Concurrent appends race on the snapshot: both writers may read the
// same state and the last snapshot wins, so a write can be lost. That
// is accepted behavior; what must hold is that the container stays
// valid JSON and nothing panics.
func TestRecordStoreConcurrentAppendIsBounded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posts.json")
	store := NewRecordStore(path, zap.NewNop())
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Append(ctx, map[string]any{"n": 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records), "container must stay valid JSON")
	assert.GreaterOrEqual(t, len(records), 1)
	assert.LessOrEqual(t, len(records), writers)
}
