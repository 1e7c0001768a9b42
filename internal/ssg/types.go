package ssg

import (
	"encoding/json"
	"time"
)

// Response holds a raw API response. The API documents are treated as opaque
// JSON: callers archive or print the raw payload, and the typed views below
// are best-effort decodes of the fields the CLI renders.
type Response struct {
	// Raw is the response body exactly as received.
	Raw json.RawMessage
	// StatusCode is the HTTP status code.
	StatusCode int
	// Endpoint is the request path that produced the response.
	Endpoint string
	// FetchedAt is the time the response was received.
	FetchedAt time.Time
}

// envelope is the common {meta, data} wrapper used by most endpoints.
type envelope struct {
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// Total returns the meta.total count, or zero when absent.
func (r *Response) Total() int {
	var env envelope
	if err := json.Unmarshal(r.Raw, &env); err != nil {
		return 0
	}
	return env.Meta.Total
}

// Data returns the data member of the response envelope, or the whole body
// when no envelope is present.
func (r *Response) Data() json.RawMessage {
	var env envelope
	if err := json.Unmarshal(r.Raw, &env); err != nil || env.Data == nil {
		return r.Raw
	}
	return env.Data
}

// decodeData decodes the data member of the envelope into v.
func (r *Response) decodeData(v any) error {
	return json.Unmarshal(r.Data(), v)
}

// TrainingProvider identifies the organization offering a course.
type TrainingProvider struct {
	Name string `json:"name"`
}

// AreaOfTraining classifies a course.
type AreaOfTraining struct {
	Description string `json:"description"`
}

// Course is the subset of course fields the CLI renders.
type Course struct {
	Title                         string           `json:"title"`
	ReferenceNumber               string           `json:"referenceNumber"`
	TrainingProvider              TrainingProvider `json:"trainingProvider"`
	AreaOfTrainings               []AreaOfTraining `json:"areaOfTrainings"`
	TotalTrainingDurationHour     float64          `json:"totalTrainingDurationHour"`
	TotalCostOfTrainingPerTrainee float64          `json:"totalCostOfTrainingPerTrainee"`
}

// Area returns the first area-of-training description, if any.
func (c Course) Area() string {
	if len(c.AreaOfTrainings) == 0 {
		return ""
	}
	return c.AreaOfTrainings[0].Description
}

// Courses decodes the course list out of a directory response.
func (r *Response) Courses() ([]Course, error) {
	var data struct {
		Courses []Course `json:"courses"`
	}
	if err := r.decodeData(&data); err != nil {
		return nil, err
	}
	return data.Courses, nil
}

// Category is a course browse category.
type Category struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Categories decodes the category list out of a categories response.
func (r *Response) Categories() ([]Category, error) {
	var data struct {
		Categories []Category `json:"categories"`
	}
	if err := r.decodeData(&data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}

// SubCategory is a course sub-category within a browse category.
type SubCategory struct {
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
}

// SubCategories decodes the sub-category list out of a subCategories response.
func (r *Response) SubCategories() ([]SubCategory, error) {
	var data struct {
		SubCategories []SubCategory `json:"subCategories"`
	}
	if err := r.decodeData(&data); err != nil {
		return nil, err
	}
	return data.SubCategories, nil
}

// Tag is a course search tag with its course count.
type Tag struct {
	Text  string      `json:"text"`
	Count json.Number `json:"count"`
}

// Tags decodes the tag list out of a tags response.
func (r *Response) Tags() ([]Tag, error) {
	var data struct {
		Tags []Tag `json:"tags"`
	}
	if err := r.decodeData(&data); err != nil {
		return nil, err
	}
	return data.Tags, nil
}

// JobRole is the subset of job-role fields the CLI renders.
type JobRole struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobRoles decodes the job-role list out of a jobRoles response. The API
// returns the list either directly under data or as data.jobRoles.
func (r *Response) JobRoles() ([]JobRole, error) {
	data := r.Data()

	var roles []JobRole
	if err := json.Unmarshal(data, &roles); err == nil {
		return roles, nil
	}

	var wrapped struct {
		JobRoles []JobRole `json:"jobRoles"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.JobRoles, nil
}

// JobRoleTitle is an autocomplete suggestion for a job-role title.
type JobRoleTitle struct {
	Score            float64 `json:"score"`
	Title            string  `json:"title"`
	AlternativeTitle string  `json:"alternativeTitle"`
}

// JobRoleTitles decodes the title suggestions out of a jobRoles/titles response.
func (r *Response) JobRoleTitles() ([]JobRoleTitle, error) {
	data := r.Data()

	var titles []JobRoleTitle
	if err := json.Unmarshal(data, &titles); err == nil {
		return titles, nil
	}

	var wrapped struct {
		Titles []JobRoleTitle `json:"titles"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Titles, nil
}

// SkillCode is a skills-and-competencies autocomplete entry.
type SkillCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SkillCodes decodes the code list out of a skills autocomplete response.
func (r *Response) SkillCodes() ([]SkillCode, error) {
	var codes []SkillCode
	if err := json.Unmarshal(r.Data(), &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// SkillCompetency is a detailed skills-and-competencies entry.
type SkillCompetency struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// SkillCompetencies decodes the detailed competency list out of an
// autocomplete/details response. Technical responses carry
// technicalSkillCompetencies, generic responses genericSkillCompetencies.
func (r *Response) SkillCompetencies() ([]SkillCompetency, error) {
	var data struct {
		Technical []SkillCompetency `json:"technicalSkillCompetencies"`
		Generic   []SkillCompetency `json:"genericSkillCompetencies"`
	}
	if err := r.decodeData(&data); err != nil {
		return nil, err
	}
	if len(data.Technical) > 0 {
		return data.Technical, nil
	}
	return data.Generic, nil
}
