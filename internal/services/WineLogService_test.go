package services

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wld/internal/models"
	"wld/internal/testutil"
)

func newTestService(store *testutil.MockStore) WineLogServiceInterface {
	return NewWineLogService(store, &testutil.MockLogger{})
}

func TestLoad_ReturnsDocumentVerbatim(t *testing.T) {
	store := &testutil.MockStore{
		Doc: models.Document{"2024-03-05": json.RawMessage(`{"wang":{"beer":3}}`)},
		Rev: "rev1",
	}
	svc := newTestService(store)

	doc, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{"wang":{"beer":3}}`), doc["2024-03-05"])
	assert.Empty(t, store.WriteCalls)
}

func TestLoad_PropagatesReadError(t *testing.T) {
	readErr := errors.New("boom")
	svc := newTestService(&testutil.MockStore{ReadErr: readErr})

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, readErr)
}

func TestSave_SetsSingleDateKey(t *testing.T) {
	store := &testutil.MockStore{Doc: models.Document{}, Rev: "rev1"}
	svc := newTestService(store)

	data := json.RawMessage(`{"baijiu": 2, "beer": 3}`)
	require.NoError(t, svc.Save(context.Background(), "2024-03-05", data))

	require.Len(t, store.WriteCalls, 1)
	written := store.WriteCalls[0].Doc
	require.Len(t, written, 1)
	assert.Equal(t, data, written["2024-03-05"])
	// Write carries the revision obtained by the read probe.
	assert.Equal(t, models.Revision("rev1"), store.WriteCalls[0].Rev)
}

func TestSave_OverwritesExistingDateWholesale(t *testing.T) {
	store := &testutil.MockStore{
		Doc: models.Document{
			"2024-03-05": json.RawMessage(`{"li":{"red":1}}`),
			"2024-03-06": json.RawMessage(`{"li":{"beer":1}}`),
		},
		Rev: "rev1",
	}
	svc := newTestService(store)

	data := json.RawMessage(`{"wang":{"beer":3}}`)
	require.NoError(t, svc.Save(context.Background(), "2024-03-05", data))

	written := store.WriteCalls[0].Doc
	assert.Equal(t, data, written["2024-03-05"])
	assert.Equal(t, json.RawMessage(`{"li":{"beer":1}}`), written["2024-03-06"])
}

func TestSave_PropagatesWriteError(t *testing.T) {
	writeErr := errors.New("stale")
	store := &testutil.MockStore{Doc: models.Document{}, WriteErr: writeErr}
	svc := newTestService(store)

	err := svc.Save(context.Background(), "2024-03-05", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, writeErr)
}

func TestImport_MergesShallowly(t *testing.T) {
	store := &testutil.MockStore{
		Doc: models.Document{
			"2024-01-01": json.RawMessage(`{"old":{"beer":1}}`),
			"2024-01-03": json.RawMessage(`{"kept":{"red":2}}`),
		},
		Rev: "rev1",
	}
	svc := newTestService(store)

	imported := models.Document{
		"2024-01-01": json.RawMessage(`{"new":{"beer":9}}`),
		"2024-01-02": json.RawMessage(`{"added":{"qingdao":1}}`),
	}
	require.NoError(t, svc.Import(context.Background(), imported))

	require.Len(t, store.WriteCalls, 1)
	written := store.WriteCalls[0].Doc
	require.Len(t, written, 3)
	assert.Equal(t, json.RawMessage(`{"new":{"beer":9}}`), written["2024-01-01"])
	assert.Equal(t, json.RawMessage(`{"added":{"qingdao":1}}`), written["2024-01-02"])
	assert.Equal(t, json.RawMessage(`{"kept":{"red":2}}`), written["2024-01-03"])
}

func TestStats_SummarizesCurrentDocument(t *testing.T) {
	store := &testutil.MockStore{
		Doc: models.Document{
			"2024-01-01": json.RawMessage(`{"wang":{"beer":2}}`),
			"2024-01-02": json.RawMessage(`{"wang":{"baijiu":1}}`),
		},
		Rev: "rev1",
	}
	svc := newTestService(store)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, "2024-01-02", stats.LastUpdated)
	assert.InDelta(t, 2*1.0+1*3.0, stats.WineStats.TotalBeer, 1e-9)
	assert.Empty(t, store.WriteCalls)
}
