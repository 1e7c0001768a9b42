package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	archivecfg "github.com/jonesrussell/ssgclient/internal/config/archive"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	timestampLayout = "20060102_150405"
)

// Archiver writes raw API responses to the local data directory. When the
// MinIO target is enabled the same bytes are also uploaded as objects.
type Archiver struct {
	config *archivecfg.Config
	client *miniogo.Client
	logger logger.Interface
}

// NewArchiver creates a new response archiver.
func NewArchiver(cfg *archivecfg.Config, log logger.Interface) (*Archiver, error) {
	if cfg == nil {
		return nil, errors.New("archive config is nil")
	}

	archiver := &Archiver{
		config: cfg,
		logger: log,
	}

	if !cfg.MinIO.Enabled {
		return archiver, nil
	}

	client, err := miniogo.New(cfg.MinIO.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		if cfg.MinIO.FailSilently {
			log.Warn("Failed to create MinIO client, continuing with local archiving only", "error", err)
			return archiver, nil
		}
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	archiver.client = client

	log.Info("MinIO archive target initialized",
		"endpoint", cfg.MinIO.Endpoint,
		"bucket", cfg.MinIO.Bucket)

	return archiver, nil
}

// Save archives a response under <data_dir>/<group>/<name>_<timestamp>.json.
// The payload is written exactly as received, re-indented for readability.
func (a *Archiver) Save(ctx context.Context, group, name string, resp *ssg.Response) (*Record, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}

	pretty, err := indentJSON(resp.Raw)
	if err != nil {
		// Non-JSON payloads are archived verbatim
		pretty = resp.Raw
	}

	dir := filepath.Join(a.config.DataDir, sanitizeName(group))
	if mkdirErr := os.MkdirAll(dir, dirPerm); mkdirErr != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", mkdirErr)
	}

	filename := fmt.Sprintf("%s_%s.json", sanitizeName(name), resp.FetchedAt.Format(timestampLayout))
	path := filepath.Join(dir, filename)
	if writeErr := os.WriteFile(path, pretty, filePerm); writeErr != nil {
		return nil, fmt.Errorf("failed to write archive file: %w", writeErr)
	}

	record := &Record{
		Group:      group,
		Name:       name,
		Endpoint:   resp.Endpoint,
		StatusCode: resp.StatusCode,
		FetchedAt:  resp.FetchedAt,
		Path:       path,
		Size:       int64(len(pretty)),
	}

	a.logger.Debug("Archived API response",
		"path", path,
		"endpoint", resp.Endpoint,
		"size", len(pretty))

	if a.config.MinIO.Enabled && a.client != nil {
		if uploadErr := a.upload(ctx, record, pretty); uploadErr != nil {
			if !a.config.MinIO.FailSilently {
				return nil, uploadErr
			}
			a.logger.Warn("Failed to upload archive to MinIO, continuing",
				"error", uploadErr,
				"path", path)
		}
	}

	return record, nil
}

// upload stores the archived payload in the MinIO bucket.
// Object key format: <group>/<year>/<month>/<day>/<name>_<timestamp>.json
func (a *Archiver) upload(ctx context.Context, record *Record, payload []byte) error {
	uploadCtx, cancel := context.WithTimeout(ctx, a.config.MinIO.UploadTimeout)
	defer cancel()

	objectKey := fmt.Sprintf("%s/%s/%s_%s.json",
		sanitizeName(record.Group),
		record.FetchedAt.Format("2006/01/02"),
		sanitizeName(record.Name),
		record.FetchedAt.Format(timestampLayout))

	_, err := a.client.PutObject(
		uploadCtx,
		a.config.MinIO.Bucket,
		objectKey,
		bytes.NewReader(payload),
		int64(len(payload)),
		miniogo.PutObjectOptions{
			ContentType: "application/json",
			UserMetadata: map[string]string{
				"endpoint":    record.Endpoint,
				"fetched-at":  record.FetchedAt.Format("2006-01-02T15:04:05Z07:00"),
				"status-code": fmt.Sprintf("%d", record.StatusCode),
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to upload archive object: %w", err)
	}

	record.ObjectKey = objectKey
	a.logger.Debug("Uploaded archive to MinIO",
		"object_key", objectKey,
		"size", len(payload))

	return nil
}

// HealthCheck verifies MinIO connectivity when the target is enabled.
func (a *Archiver) HealthCheck(ctx context.Context) error {
	if !a.config.MinIO.Enabled || a.client == nil {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.config.MinIO.Bucket)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", a.config.MinIO.Bucket)
	}
	return nil
}

// indentJSON re-indents a JSON payload without altering its content.
func indentJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	// invalidNameChars matches characters that are problematic in file and
	// object names.
	invalidNameChars = regexp.MustCompile(`[\\/?*|<>:"\x00-\x1F ]`)
	// consecutiveUnderscores matches two or more consecutive underscores.
	consecutiveUnderscores = regexp.MustCompile(`_{2,}`)
)

// sanitizeName normalizes a group or operation name for use in file paths
// and object keys.
func sanitizeName(name string) string {
	if name == "" {
		return "unknown"
	}

	normalized := strings.ToLower(name)
	normalized = invalidNameChars.ReplaceAllString(normalized, "_")
	normalized = consecutiveUnderscores.ReplaceAllString(normalized, "_")
	normalized = strings.Trim(normalized, "_")

	if normalized == "" {
		return "unknown"
	}
	return normalized
}
