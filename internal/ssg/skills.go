package ssg

import (
	"context"
	"net/url"
	"strconv"
)

// skillsPrefix roots every skills framework endpoint.
const skillsPrefix = "/skillsFramework"

// DefaultJobRolesPageSize is the job-roles page size when none is set.
const DefaultJobRolesPageSize = 20

// SkillsService calls the Skills Framework endpoints. These endpoints take
// no x-api-version header.
type SkillsService struct {
	client *Client
}

// JobRolesQuery describes a job-role search. All filters are optional.
type JobRolesQuery struct {
	// Keyword searches job-role titles and descriptions.
	Keyword string
	// Sector filters by sector ID (comma delimiter for multiple).
	Sector string
	// Qualification filters by qualification ID (comma delimiter for multiple).
	Qualification string
	// FieldOfStudy filters by field-of-study ID (comma delimiter for multiple).
	FieldOfStudy string
	// Page is the zero-based page number.
	Page int
	// PageSize is the number of results per page (default 20, max 100).
	PageSize int
}

// values serializes the query.
func (q *JobRolesQuery) values() url.Values {
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultJobRolesPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Sector != "" {
		params.Set("sector", q.Sector)
	}
	if q.Qualification != "" {
		params.Set("qualification", q.Qualification)
	}
	if q.FieldOfStudy != "" {
		params.Set("fieldOfStudy", q.FieldOfStudy)
	}
	return params
}

// JobRoles searches job roles by keyword, sector, qualification and field
// of study.
//
// Endpoint: GET /skillsFramework/jobRoles
func (s *SkillsService) JobRoles(ctx context.Context, query JobRolesQuery) (*Response, error) {
	return s.client.get(ctx, skillsPrefix+"/jobRoles", query.values(), versionNone)
}

// JobRoleTitles retrieves up to 5 job-role titles matching the keyword
// (minimum 3 characters), for autocomplete use.
//
// Endpoint: GET /skillsFramework/jobRoles/titles
func (s *SkillsService) JobRoleTitles(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx, skillsPrefix+"/jobRoles/titles", params, versionNone)
}

// GenericSkills retrieves Critical Core Skills (CCS/GSC) codes matching the
// keyword (minimum 3 characters; keywords with spaces may be rejected by
// the API).
//
// Endpoint: GET /skillsFramework/codes/skillsAndCompetencies/generic/autocomplete
func (s *SkillsService) GenericSkills(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx, skillsPrefix+"/codes/skillsAndCompetencies/generic/autocomplete", params, versionNone)
}

// TechnicalSkills retrieves Technical Skill Competency (TSC) codes matching
// the keyword. TSC codes name skill categories (e.g. "Data Analysis"), not
// specific technologies; the API returns 404 when nothing matches.
//
// Endpoint: GET /skillsFramework/codes/skillsAndCompetencies/technical/autocomplete
func (s *SkillsService) TechnicalSkills(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx, skillsPrefix+"/codes/skillsAndCompetencies/technical/autocomplete", params, versionNone)
}

// TechnicalSkillDetails retrieves detailed TSC information for the keyword,
// including titles, categories and level information.
//
// Endpoint: GET /skillsFramework/codes/skillsAndCompetencies/technical/autocomplete/details
func (s *SkillsService) TechnicalSkillDetails(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx,
		skillsPrefix+"/codes/skillsAndCompetencies/technical/autocomplete/details", params, versionNone)
}

// GenericSkillDetails retrieves detailed CCS/GSC information for the keyword.
//
// Endpoint: GET /skillsFramework/codes/skillsAndCompetencies/generic/autocomplete/details
func (s *SkillsService) GenericSkillDetails(ctx context.Context, keyword string) (*Response, error) {
	if err := validateKeyword(keyword); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("keyword", keyword)
	return s.client.get(ctx,
		skillsPrefix+"/codes/skillsAndCompetencies/generic/autocomplete/details", params, versionNone)
}
