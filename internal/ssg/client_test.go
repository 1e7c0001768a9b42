package ssg_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// recordedRequest captures what the server saw.
type recordedRequest struct {
	path    string
	query   map[string]string
	version string
	present bool
}

// newTestClient starts a test server returning body and wires a client to it.
func newTestClient(t *testing.T, status int, body string, rec *recordedRequest) *ssg.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec != nil {
			rec.path = r.URL.Path
			rec.query = map[string]string{}
			for key, values := range r.URL.Query() {
				rec.query[key] = values[0]
			}
			rec.version = r.Header.Get("x-api-version")
			_, rec.present = r.Header["X-Api-Version"]
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return ssg.NewClient(
		ssg.WithBaseURL(server.URL),
		ssg.WithHTTPClient(server.Client()),
	)
}

func TestClient_DefaultVersionHeader(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":{}}`, &rec)

	_, err := client.Courses().Tags(context.Background(), ssg.TagSortText)
	require.NoError(t, err)

	assert.Equal(t, "/courses/tags", rec.path)
	assert.Equal(t, "v1", rec.version)
}

func TestClient_DirectorySearchVersion(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":{"courses":[]}}`, &rec)

	_, err := client.Courses().SearchDirectory(context.Background(), ssg.DirectoryQuery{
		Keyword: "python",
	})
	require.NoError(t, err)

	assert.Equal(t, "/courses/directory", rec.path)
	assert.Equal(t, "v2.1", rec.version)
	assert.Equal(t, "python", rec.query["keyword"])
	assert.Equal(t, "10", rec.query["pageSize"])
	assert.Equal(t, "0", rec.query["page"])
}

func TestClient_SkillsEndpointsSendNoVersionHeader(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":[]}`, &rec)

	_, err := client.Skills().JobRoles(context.Background(), ssg.JobRolesQuery{Keyword: "engineer"})
	require.NoError(t, err)

	assert.Equal(t, "/skillsFramework/jobRoles", rec.path)
	assert.False(t, rec.present, "skills endpoints must not send x-api-version")
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.StatusNotFound,
		`{"code":404,"message":"Course not found"}`, nil)

	_, err := client.Courses().Details(context.Background(), "TGS-0000000000", false)
	require.Error(t, err)

	var apiErr *ssg.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Course not found", apiErr.Message)
	assert.True(t, apiErr.IsNotFound())
}

func TestClient_ErrorEnvelopeErrorField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.StatusInternalServerError,
		`{"error":"internal error"}`, nil)

	_, err := client.Courses().Tags(context.Background(), ssg.TagSortCount)
	require.Error(t, err)

	var apiErr *ssg.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "internal error", apiErr.Message)
	assert.False(t, apiErr.IsNotFound())
}

func TestClient_ValidationRunsBeforeAnyRequest(t *testing.T) {
	t.Parallel()

	// No server: validation failures must not produce a request.
	client := ssg.NewClient(ssg.WithBaseURL("http://127.0.0.1:1"))

	tests := []struct {
		name    string
		call    func(context.Context) error
		wantErr error
	}{
		{
			name: "short keyword",
			call: func(ctx context.Context) error {
				_, err := client.Courses().Categories(ctx, "ab")
				return err
			},
			wantErr: ssg.ErrKeywordTooShort,
		},
		{
			name: "keyword and tagging codes conflict",
			call: func(ctx context.Context) error {
				_, err := client.Courses().SearchDirectory(ctx, ssg.DirectoryQuery{
					Keyword:      "python",
					TaggingCodes: []string{"1"},
				})
				return err
			},
			wantErr: ssg.ErrConflictingFilters,
		},
		{
			name: "tagging codes without support end date",
			call: func(ctx context.Context) error {
				_, err := client.Courses().SearchDirectory(ctx, ssg.DirectoryQuery{
					TaggingCodes: []string{"FULL"},
				})
				return err
			},
			wantErr: ssg.ErrMissingSupportEndDate,
		},
		{
			name: "delta without last update date",
			call: func(ctx context.Context) error {
				_, err := client.Courses().SearchDirectory(ctx, ssg.DirectoryQuery{
					TaggingCodes:   []string{"FULL"},
					SupportEndDate: "20260101",
					RetrieveType:   ssg.RetrieveDelta,
				})
				return err
			},
			wantErr: ssg.ErrDeltaRequiresLastUpdate,
		},
		{
			name: "details without reference number",
			call: func(ctx context.Context) error {
				_, err := client.Courses().Details(ctx, "", false)
				return err
			},
			wantErr: ssg.ErrMissingReferenceNumber,
		},
		{
			name: "skill autocomplete short keyword",
			call: func(ctx context.Context) error {
				_, err := client.Skills().TechnicalSkills(ctx, "ab")
				return err
			},
			wantErr: ssg.ErrKeywordTooShort,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.call(context.Background())
			require.Error(t, err)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}
