package ssg_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/ssg"
)

func TestJobRoles_QuerySerialization(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":[]}`, &rec)

	_, err := client.Skills().JobRoles(context.Background(), ssg.JobRolesQuery{
		Keyword:       "engineer",
		Sector:        "24,25",
		Qualification: "7",
		FieldOfStudy:  "12",
		Page:          3,
		PageSize:      100,
	})
	require.NoError(t, err)

	assert.Equal(t, "/skillsFramework/jobRoles", rec.path)
	assert.Equal(t, "engineer", rec.query["keyword"])
	assert.Equal(t, "24,25", rec.query["sector"])
	assert.Equal(t, "7", rec.query["qualification"])
	assert.Equal(t, "12", rec.query["fieldOfStudy"])
	assert.Equal(t, "3", rec.query["page"])
	assert.Equal(t, "100", rec.query["pageSize"])
}

func TestJobRoles_DefaultPageSize(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":[]}`, &rec)

	_, err := client.Skills().JobRoles(context.Background(), ssg.JobRolesQuery{})
	require.NoError(t, err)

	assert.Equal(t, "20", rec.query["pageSize"])
	assert.NotContains(t, rec.query, "keyword")
}

func TestJobRoleTitles_Request(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":[]}`, &rec)

	_, err := client.Skills().JobRoleTitles(context.Background(), "engi")
	require.NoError(t, err)

	assert.Equal(t, "/skillsFramework/jobRoles/titles", rec.path)
	assert.Equal(t, "engi", rec.query["keyword"])
	assert.False(t, rec.present)
}

func TestSkillAutocomplete_Paths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(*ssg.Client, context.Context) (*ssg.Response, error)
		wantPath string
	}{
		{
			name: "technical",
			call: func(c *ssg.Client, ctx context.Context) (*ssg.Response, error) {
				return c.Skills().TechnicalSkills(ctx, "data")
			},
			wantPath: "/skillsFramework/codes/skillsAndCompetencies/technical/autocomplete",
		},
		{
			name: "technical details",
			call: func(c *ssg.Client, ctx context.Context) (*ssg.Response, error) {
				return c.Skills().TechnicalSkillDetails(ctx, "data")
			},
			wantPath: "/skillsFramework/codes/skillsAndCompetencies/technical/autocomplete/details",
		},
		{
			name: "generic",
			call: func(c *ssg.Client, ctx context.Context) (*ssg.Response, error) {
				return c.Skills().GenericSkills(ctx, "communication")
			},
			wantPath: "/skillsFramework/codes/skillsAndCompetencies/generic/autocomplete",
		},
		{
			name: "generic details",
			call: func(c *ssg.Client, ctx context.Context) (*ssg.Response, error) {
				return c.Skills().GenericSkillDetails(ctx, "communication")
			},
			wantPath: "/skillsFramework/codes/skillsAndCompetencies/generic/autocomplete/details",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var rec recordedRequest
			client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":[]}`, &rec)

			_, err := test.call(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, test.wantPath, rec.path)
			assert.False(t, rec.present, "skills endpoints must not send x-api-version")
		})
	}
}
