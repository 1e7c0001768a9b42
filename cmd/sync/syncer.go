package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/jonesrussell/ssgclient/internal/archive"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/snapshot"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// Endpoints named in run records.
const (
	jobRolesEndpoint  = "/skillsFramework/jobRoles"
	directoryEndpoint = "/courses/directory"
)

// maxPages caps a run so a bad total from the API cannot loop forever.
const maxPages = 1000

// SyncOptions narrow what a sync run fetches.
type SyncOptions struct {
	// Keyword restricts the run to job roles matching a keyword.
	Keyword string
	// PageSize is the number of items fetched per request.
	PageSize int
	// CourseTaggingCodes additionally syncs the course directory for these
	// tagging codes. Requires CourseSupportEndDate.
	CourseTaggingCodes []string
	// CourseSupportEndDate is the course support end date (YYYYMMDD) for the
	// tagged-course sync.
	CourseSupportEndDate string
}

// Syncer pages through the Skills Framework job roles, archiving every raw
// response and recording the run in the snapshot store.
type Syncer struct {
	logger   logger.Interface
	client   *ssg.Client
	store    *snapshot.Store
	archiver *archive.Archiver
	opts     SyncOptions
}

// NewSyncer creates a Syncer.
func NewSyncer(
	log logger.Interface,
	client *ssg.Client,
	store *snapshot.Store,
	archiver *archive.Archiver,
	opts SyncOptions,
) *Syncer {
	if opts.PageSize <= 0 {
		opts.PageSize = ssg.DefaultJobRolesPageSize
	}
	return &Syncer{
		logger:   log.WithComponent("sync"),
		client:   client,
		store:    store,
		archiver: archiver,
		opts:     opts,
	}
}

// Run performs one complete sync: the job-role pages, then the tagged
// course directory when configured. Each endpoint gets its own run record,
// marked failed when any page cannot be fetched or stored.
func (s *Syncer) Run(ctx context.Context) error {
	if err := s.runEndpoint(ctx, jobRolesEndpoint, s.fetchJobRolesPage); err != nil {
		return err
	}
	if len(s.opts.CourseTaggingCodes) == 0 {
		return nil
	}
	return s.runEndpoint(ctx, directoryEndpoint, s.fetchCoursesPage)
}

// pageFetcher fetches one page and reports the number of items on it plus
// the total the API claims.
type pageFetcher func(ctx context.Context, page int) (resp *ssg.Response, items, total int, err error)

// runEndpoint records one run around a full paging pass.
func (s *Syncer) runEndpoint(ctx context.Context, endpoint string, fetch pageFetcher) error {
	start := time.Now()

	run, err := s.store.BeginRun(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	s.logger.Info("Sync started",
		"run_id", run.ID.String(), "endpoint", endpoint, "page_size", s.opts.PageSize)

	fetched, syncErr := s.fetchAll(ctx, run, fetch)

	if completeErr := s.store.CompleteRun(ctx, run.ID, syncErr); completeErr != nil {
		s.logger.Error("Failed to record run completion", "run_id", run.ID.String(), "error", completeErr)
	}

	if syncErr != nil {
		s.logger.WithDuration(time.Since(start)).Error("Sync failed",
			"run_id", run.ID.String(), "endpoint", endpoint, "fetched", fetched, "error", syncErr)
		return syncErr
	}

	s.logger.WithDuration(time.Since(start)).Info("Sync completed",
		"run_id", run.ID.String(), "endpoint", endpoint, "fetched", fetched)
	return nil
}

// fetchAll pages through an endpoint until the reported total is reached.
func (s *Syncer) fetchAll(ctx context.Context, run *snapshot.Run, fetch pageFetcher) (int, error) {
	fetched := 0

	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}

		resp, items, total, err := fetch(ctx, page)
		if err != nil {
			return fetched, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if items == 0 {
			break
		}

		name := fmt.Sprintf("%s_page_%04d", sanitizeEndpoint(run.Endpoint), page)
		if err := s.store.SaveDocument(ctx, run.ID, name, resp); err != nil {
			return fetched, fmt.Errorf("store page %d: %w", page, err)
		}
		if _, err := s.archiver.Save(ctx, "sync", name, resp); err != nil {
			return fetched, fmt.Errorf("archive page %d: %w", page, err)
		}

		fetched += items
		s.logger.Debug("Page synced", "page", page, "items", items, "total", total)

		if total > 0 && fetched >= total {
			break
		}
	}

	return fetched, nil
}

// fetchJobRolesPage fetches one page of job roles.
func (s *Syncer) fetchJobRolesPage(ctx context.Context, page int) (*ssg.Response, int, int, error) {
	resp, err := s.client.Skills().JobRoles(ctx, ssg.JobRolesQuery{
		Keyword:  s.opts.Keyword,
		Page:     page,
		PageSize: s.opts.PageSize,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	roles, err := resp.JobRoles()
	if err != nil {
		return nil, 0, 0, err
	}
	return resp, len(roles), resp.Total(), nil
}

// fetchCoursesPage fetches one page of the tagged course directory.
func (s *Syncer) fetchCoursesPage(ctx context.Context, page int) (*ssg.Response, int, int, error) {
	resp, err := s.client.Courses().SearchDirectory(ctx, ssg.DirectoryQuery{
		TaggingCodes:   s.opts.CourseTaggingCodes,
		SupportEndDate: s.opts.CourseSupportEndDate,
		Page:           page,
		PageSize:       s.opts.PageSize,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	courses, err := resp.Courses()
	if err != nil {
		return nil, 0, 0, err
	}
	return resp, len(courses), resp.Total(), nil
}

// sanitizeEndpoint turns an endpoint path into a document-name prefix.
func sanitizeEndpoint(endpoint string) string {
	switch endpoint {
	case jobRolesEndpoint:
		return "jobroles"
	case directoryEndpoint:
		return "courses"
	default:
		return "documents"
	}
}
