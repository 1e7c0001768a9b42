package snapshot_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/snapshot"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

func newTestStore(t *testing.T) *snapshot.Store {
	t.Helper()

	store, err := snapshot.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	run, err := store.BeginRun(ctx, "/skillsFramework/jobRoles")
	require.NoError(t, err)
	assert.Equal(t, snapshot.StatusRunning, run.Status)

	require.NoError(t, store.CompleteRun(ctx, run.ID, nil))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, snapshot.StatusCompleted, runs[0].Status)
	assert.Empty(t, runs[0].Error)
	require.NotNil(t, runs[0].CompletedAt)
}

func TestStore_FailedRunRecordsError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	run, err := store.BeginRun(ctx, "/skillsFramework/jobRoles")
	require.NoError(t, err)

	require.NoError(t, store.CompleteRun(ctx, run.ID, errors.New("fetch page 3: boom")))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, snapshot.StatusFailed, runs[0].Status)
	assert.Equal(t, "fetch page 3: boom", runs[0].Error)
}

func TestStore_Documents(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	run, err := store.BeginRun(ctx, "/skillsFramework/jobRoles")
	require.NoError(t, err)

	resp := &ssg.Response{
		Raw:       json.RawMessage(`{"data":[{"code":"ICT-001"}]}`),
		Endpoint:  "/skillsFramework/jobRoles",
		FetchedAt: time.Now().UTC(),
	}

	require.NoError(t, store.SaveDocument(ctx, run.ID, "jobroles_page_0000", resp))
	require.NoError(t, store.SaveDocument(ctx, run.ID, "jobroles_page_0001", resp))

	count, err := store.CountDocuments(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	docs, err := store.Documents(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "jobroles_page_0000", docs[0].Name)
	assert.JSONEq(t, string(resp.Raw), string(docs[0].Body))
}

func TestStore_ListRunsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := store.BeginRun(ctx, "/skillsFramework/jobRoles")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.True(t, !runs[0].StartedAt.Before(runs[1].StartedAt), "runs must be newest first")
}
