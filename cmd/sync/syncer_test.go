package sync_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmdsync "github.com/jonesrussell/ssgclient/cmd/sync"
	"github.com/jonesrussell/ssgclient/internal/archive"
	archivecfg "github.com/jonesrussell/ssgclient/internal/config/archive"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/snapshot"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// pagedJobRolesServer serves a fixed number of job roles across pages.
func pagedJobRolesServer(t *testing.T, total, pageSize int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/skillsFramework/jobRoles", r.URL.Path)

		page := 0
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)

		remaining := total - page*pageSize
		if remaining < 0 {
			remaining = 0
		}
		if remaining > pageSize {
			remaining = pageSize
		}

		roles := ""
		for i := 0; i < remaining; i++ {
			if i > 0 {
				roles += ","
			}
			roles += fmt.Sprintf(`{"code":"ICT-%03d","title":"Role %d"}`, page*pageSize+i, page*pageSize+i)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"meta":{"total":%d},"data":[%s]}`, total, roles)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestSyncer(t *testing.T, server *httptest.Server, opts cmdsync.SyncOptions) (*cmdsync.Syncer, *snapshot.Store) {
	t.Helper()

	client := ssg.NewClient(
		ssg.WithBaseURL(server.URL),
		ssg.WithHTTPClient(server.Client()),
	)

	store, err := snapshot.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := archivecfg.NewConfig()
	cfg.DataDir = t.TempDir()
	archiver, err := archive.NewArchiver(cfg, logger.NewNoOp())
	require.NoError(t, err)

	return cmdsync.NewSyncer(logger.NewNoOp(), client, store, archiver, opts), store
}

func TestSyncer_FetchesAllPages(t *testing.T) {
	t.Parallel()

	server := pagedJobRolesServer(t, 5, 2)
	syncer, store := newTestSyncer(t, server, cmdsync.SyncOptions{PageSize: 2})

	ctx := context.Background()
	require.NoError(t, syncer.Run(ctx))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, snapshot.StatusCompleted, runs[0].Status)

	// 5 roles at 2 per page is 3 pages
	count, err := store.CountDocuments(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSyncer_RecordsFailedRun(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	t.Cleanup(server.Close)

	syncer, store := newTestSyncer(t, server, cmdsync.SyncOptions{PageSize: 20})

	ctx := context.Background()
	err := syncer.Run(ctx)
	require.Error(t, err)

	runs, listErr := store.ListRuns(ctx, 10)
	require.NoError(t, listErr)
	require.Len(t, runs, 1)
	assert.Equal(t, snapshot.StatusFailed, runs[0].Status)
	assert.Contains(t, runs[0].Error, "fetch page 0")
}

func TestSyncer_EmptyResultCompletesCleanly(t *testing.T) {
	t.Parallel()

	server := pagedJobRolesServer(t, 0, 20)
	syncer, store := newTestSyncer(t, server, cmdsync.SyncOptions{PageSize: 20})

	ctx := context.Background()
	require.NoError(t, syncer.Run(ctx))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, snapshot.StatusCompleted, runs[0].Status)

	count, err := store.CountDocuments(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSyncer_TaggedCourses(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/skillsFramework/jobRoles":
			fmt.Fprint(w, `{"meta":{"total":1},"data":[{"code":"ICT-001","title":"Engineer"}]}`)
		case "/courses/directory":
			require.Equal(t, "FULL", r.URL.Query().Get("taggingCodes"))
			require.Equal(t, "20260101", r.URL.Query().Get("courseSupportEndDate"))
			fmt.Fprint(w, `{"meta":{"total":1},"data":{"courses":[{"title":"Python Basics"}]}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	syncer, store := newTestSyncer(t, server, cmdsync.SyncOptions{
		PageSize:             20,
		CourseTaggingCodes:   []string{"FULL"},
		CourseSupportEndDate: "20260101",
	})

	ctx := context.Background()
	require.NoError(t, syncer.Run(ctx))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	endpoints := []string{runs[0].Endpoint, runs[1].Endpoint}
	assert.Contains(t, endpoints, "/skillsFramework/jobRoles")
	assert.Contains(t, endpoints, "/courses/directory")
	for _, run := range runs {
		assert.Equal(t, snapshot.StatusCompleted, run.Status)
	}
}
