package ssg_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/ssg"
)

const emptyDirectoryBody = `{"meta":{"total":0},"data":{"courses":[]}}`

func TestSearchDirectory_TaggingCodes(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, emptyDirectoryBody, &rec)

	_, err := client.Courses().SearchDirectory(context.Background(), ssg.DirectoryQuery{
		TaggingCodes:   []string{"1", "2"},
		SupportEndDate: "20260101",
		PageSize:       50,
		Page:           2,
	})
	require.NoError(t, err)

	assert.Equal(t, "1,2", rec.query["taggingCodes"])
	assert.Equal(t, "20260101", rec.query["courseSupportEndDate"])
	assert.Equal(t, ssg.RetrieveFull, rec.query["retrieveType"])
	assert.Equal(t, "50", rec.query["pageSize"])
	assert.Equal(t, "2", rec.query["page"])
	assert.NotContains(t, rec.query, "keyword")
	assert.NotContains(t, rec.query, "lastUpdateDate")
}

func TestSearchDirectory_Delta(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, emptyDirectoryBody, &rec)

	_, err := client.Courses().SearchDirectory(context.Background(), ssg.DirectoryQuery{
		TaggingCodes:   []string{"FULL"},
		SupportEndDate: "20260101",
		RetrieveType:   ssg.RetrieveDelta,
		LastUpdateDate: "20250801",
	})
	require.NoError(t, err)

	assert.Equal(t, ssg.RetrieveDelta, rec.query["retrieveType"])
	assert.Equal(t, "20250801", rec.query["lastUpdateDate"])
}

func TestSubCategories_Path(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":{"subCategories":[]}}`, &rec)

	_, err := client.Courses().SubCategories(context.Background(), 34)
	require.NoError(t, err)

	assert.Equal(t, "/courses/categories/34/subCategories", rec.path)
}

func TestTags_SortBy(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"meta":{"total":0},"data":{"tags":[]}}`, &rec)

	_, err := client.Courses().Tags(context.Background(), ssg.TagSortCount)
	require.NoError(t, err)

	assert.Equal(t, "1", rec.query["sortBy"])
}

func TestDetails_Request(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, `{"data":{"courses":[]}}`, &rec)

	_, err := client.Courses().Details(context.Background(), "TGS-2020002106", true)
	require.NoError(t, err)

	assert.Equal(t, "/courses/directory/TGS-2020002106", rec.path)
	assert.Equal(t, "v1.2", rec.version)
	assert.Equal(t, "true", rec.query["includeExpiredCourses"])
}

func TestRelated_Path(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, emptyDirectoryBody, &rec)

	_, err := client.Courses().Related(context.Background(), "TGS-2020002106")
	require.NoError(t, err)

	assert.Equal(t, "/courses/directory/TGS-2020002106/related", rec.path)
	assert.Equal(t, "v1", rec.version)
}

func TestPopularAndFeatured(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, emptyDirectoryBody, &rec)

	_, err := client.Courses().Popular(context.Background(), ssg.PopularQuery{TaggingCode: "SFC"})
	require.NoError(t, err)
	assert.Equal(t, "/courses/directory/popular", rec.path)
	assert.Equal(t, "v1.2", rec.version)
	assert.Equal(t, "SFC", rec.query["taggingCode"])

	_, err = client.Courses().Featured(context.Background(), ssg.PopularQuery{})
	require.NoError(t, err)
	assert.Equal(t, "/courses/directory/featured", rec.path)
	assert.Equal(t, "10", rec.query["pageSize"])
	assert.NotContains(t, rec.query, "taggingCode")
}

func TestAutocomplete_Request(t *testing.T) {
	t.Parallel()

	var rec recordedRequest
	client := newTestClient(t, http.StatusOK, emptyDirectoryBody, &rec)

	_, err := client.Courses().Autocomplete(context.Background(), "pyth")
	require.NoError(t, err)

	assert.Equal(t, "/courses/directory/autocomplete", rec.path)
	assert.Equal(t, "v1.2", rec.version)
	assert.Equal(t, "pyth", rec.query["keyword"])
}
