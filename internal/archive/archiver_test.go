package archive_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/archive"
	archivecfg "github.com/jonesrussell/ssgclient/internal/config/archive"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

func newTestArchiver(t *testing.T) (*archive.Archiver, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := archivecfg.NewConfig()
	cfg.DataDir = dir

	archiver, err := archive.NewArchiver(cfg, logger.NewNoOp())
	require.NoError(t, err)
	return archiver, dir
}

func TestArchiver_Save(t *testing.T) {
	t.Parallel()

	archiver, dir := newTestArchiver(t)

	fetchedAt := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	resp := &ssg.Response{
		Raw:        json.RawMessage(`{"meta":{"total":1},"data":{"courses":[]}}`),
		StatusCode: 200,
		Endpoint:   "/courses/directory",
		FetchedAt:  fetchedAt,
	}

	record, err := archiver.Save(context.Background(), "courses", "directory_search", resp)
	require.NoError(t, err)

	wantPath := filepath.Join(dir, "courses", "directory_search_20260825_103000.json")
	assert.Equal(t, wantPath, record.Path)
	assert.Equal(t, "/courses/directory", record.Endpoint)
	assert.Empty(t, record.ObjectKey, "no MinIO upload when disabled")

	content, err := os.ReadFile(record.Path)
	require.NoError(t, err)
	assert.JSONEq(t, string(resp.Raw), string(content))
	// Written payload is indented
	assert.Contains(t, string(content), "\n  ")
	assert.Equal(t, int64(len(content)), record.Size)
}

func TestArchiver_SaveNonJSONPayload(t *testing.T) {
	t.Parallel()

	archiver, _ := newTestArchiver(t)

	resp := &ssg.Response{
		Raw:       json.RawMessage("not json"),
		Endpoint:  "/courses/tags",
		FetchedAt: time.Now().UTC(),
	}

	record, err := archiver.Save(context.Background(), "courses", "tags", resp)
	require.NoError(t, err)

	content, err := os.ReadFile(record.Path)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(content))
}

func TestArchiver_SaveNilResponse(t *testing.T) {
	t.Parallel()

	archiver, _ := newTestArchiver(t)

	_, err := archiver.Save(context.Background(), "courses", "tags", nil)
	require.Error(t, err)
}

func TestArchiver_SaveSanitizesNames(t *testing.T) {
	t.Parallel()

	archiver, dir := newTestArchiver(t)

	fetchedAt := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	resp := &ssg.Response{
		Raw:       json.RawMessage(`{}`),
		FetchedAt: fetchedAt,
	}

	record, err := archiver.Save(context.Background(), "Skills/Framework", "Job Roles: Page 1", resp)
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(dir, "skills_framework", "job_roles_page_1_20260825_103000.json"),
		record.Path)
}

func TestArchiver_HealthCheckDisabled(t *testing.T) {
	t.Parallel()

	archiver, _ := newTestArchiver(t)
	assert.NoError(t, archiver.HealthCheck(context.Background()))
}
