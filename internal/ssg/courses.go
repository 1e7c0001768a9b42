package ssg

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// API versions pinned per endpoint. The remaining course endpoints use the
// client default (v1).
const (
	directoryVersion    = "v2.1"
	autocompleteVersion = "v1.2"
	detailsVersion      = "v1.2"
	popularVersion      = "v1.2"
	featuredVersion     = "v1.2"
)

// DefaultPageSize is the page size used when a query does not set one.
const DefaultPageSize = 10

// Retrieve types for tagging-code directory searches.
const (
	RetrieveFull  = "FULL"
	RetrieveDelta = "DELTA"
)

// TagSort selects the ordering of the course tags listing.
type TagSort string

const (
	// TagSortText orders tags alphabetically.
	TagSortText TagSort = "0"
	// TagSortCount orders tags by course count.
	TagSortCount TagSort = "1"
)

// CoursesService calls the Course Directory endpoints.
type CoursesService struct {
	client *Client
}

// DirectoryQuery describes a course directory search. Keyword and
// TaggingCodes are mutually exclusive; the API rejects the combination.
type DirectoryQuery struct {
	// Keyword searches course titles and content (minimum 3 characters).
	Keyword string
	// TaggingCodes filters by course tagging codes (e.g. "1" for SFC,
	// "FULL" for all codes). Requires SupportEndDate.
	TaggingCodes []string
	// SupportEndDate is the course support end date, format YYYYMMDD.
	SupportEndDate string
	// RetrieveType is FULL (default) or DELTA.
	RetrieveType string
	// LastUpdateDate (YYYYMMDD) is required when RetrieveType is DELTA.
	LastUpdateDate string
	// PageSize is the number of items per page (default 10).
	PageSize int
	// Page is the zero-based page number.
	Page int
}

// validate checks the query invariants before any request is issued.
func (q *DirectoryQuery) validate() error {
	if q.Keyword != "" && len(q.TaggingCodes) > 0 {
		return ErrConflictingFilters
	}
	if q.Keyword != "" {
		return validateKeyword(q.Keyword)
	}
	if len(q.TaggingCodes) > 0 {
		if q.SupportEndDate == "" {
			return ErrMissingSupportEndDate
		}
		if q.RetrieveType == RetrieveDelta && q.LastUpdateDate == "" {
			return ErrDeltaRequiresLastUpdate
		}
	}
	return nil
}

// values serializes the query. Page numbers serialize as strings, matching
// the wire format the API expects.
func (q *DirectoryQuery) values() url.Values {
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(q.Page))

	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if len(q.TaggingCodes) > 0 {
		params.Set("taggingCodes", strings.Join(q.TaggingCodes, ","))
		params.Set("courseSupportEndDate", q.SupportEndDate)
		retrieveType := q.RetrieveType
		if retrieveType == "" {
			retrieveType = RetrieveFull
		}
		params.Set("retrieveType", retrieveType)
		if retrieveType == RetrieveDelta && q.LastUpdateDate != "" {
			params.Set("lastUpdateDate", q.LastUpdateDate)
		}
	}
	return params
}

// SearchDirectory retrieves course details from the directory, by keyword or
// by tagging codes.
//
// Endpoint: GET /courses/directory (v2.1)
func (s *CoursesService) SearchDirectory(ctx context.Context, query DirectoryQuery) (*Response, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/courses/directory", query.values(), directoryVersion)
}

// Categories retrieves course categories matching the keyword
// (minimum 3 characters).
//
// Endpoint: GET /courses/categories (v1)
func (s *CoursesService) Categories(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx, "/courses/categories", params, "")
}

// SubCategories retrieves the sub-categories within a browse category.
//
// Endpoint: GET /courses/categories/{browseCategoryID}/subCategories (v1)
func (s *CoursesService) SubCategories(ctx context.Context, browseCategoryID int) (*Response, error) {
	path := fmt.Sprintf("/courses/categories/%d/subCategories", browseCategoryID)
	return s.client.get(ctx, path, nil, "")
}

// Tags retrieves the course tags, sorted by text or by course count.
//
// Endpoint: GET /courses/tags (v1)
func (s *CoursesService) Tags(ctx context.Context, sortBy TagSort) (*Response, error) {
	if sortBy == "" {
		sortBy = TagSortText
	}
	params := url.Values{}
	params.Set("sortBy", string(sortBy))
	return s.client.get(ctx, "/courses/tags", params, "")
}

// Autocomplete retrieves course-title suggestions for the keyword
// (minimum 3 characters).
//
// Endpoint: GET /courses/directory/autocomplete (v1.2)
func (s *CoursesService) Autocomplete(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx, "/courses/directory/autocomplete", params, autocompleteVersion)
}

// Details retrieves the full details of a course by its reference number,
// including runs, fees, objectives and training provider information.
//
// Endpoint: GET /courses/directory/{referenceNumber} (v1.2)
func (s *CoursesService) Details(ctx context.Context, referenceNumber string, includeExpired bool) (*Response, error) {
	if referenceNumber == "" {
		return nil, ErrMissingReferenceNumber
	}
	params := url.Values{}
	params.Set("includeExpiredCourses", strconv.FormatBool(includeExpired))
	return s.client.get(ctx, "/courses/directory/"+url.PathEscape(referenceNumber), params, detailsVersion)
}

// Related retrieves up to 10 courses related to the given course.
//
// Endpoint: GET /courses/directory/{referenceNumber}/related (v1)
func (s *CoursesService) Related(ctx context.Context, referenceNumber string) (*Response, error) {
	if referenceNumber == "" {
		return nil, ErrMissingReferenceNumber
	}
	path := "/courses/directory/" + url.PathEscape(referenceNumber) + "/related"
	return s.client.get(ctx, path, nil, "")
}

// PopularQuery describes a popular/featured course listing.
type PopularQuery struct {
	// TaggingCode filters by a course tagging code (WSQ, CET, PET, SFC, PA).
	TaggingCode string
	// PageSize is the number of items per page (default 10).
	PageSize int
	// Page is the zero-based page number.
	Page int
}

// values serializes the query.
func (q *PopularQuery) values() url.Values {
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(q.Page))
	if q.TaggingCode != "" {
		params.Set("taggingCode", q.TaggingCode)
	}
	return params
}

// Popular retrieves trending courses along with provider information.
//
// Endpoint: GET /courses/directory/popular (v1.2)
func (s *CoursesService) Popular(ctx context.Context, query PopularQuery) (*Response, error) {
	return s.client.get(ctx, "/courses/directory/popular", query.values(), popularVersion)
}

// Featured retrieves featured courses from the MySkillsFuture directory.
//
// Endpoint: GET /courses/directory/featured (v1.2)
func (s *CoursesService) Featured(ctx context.Context, query PopularQuery) (*Response, error) {
	return s.client.get(ctx, "/courses/directory/featured", query.values(), featuredVersion)
}
