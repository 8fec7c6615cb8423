package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"skillswap_backend/internal/services/dto"
	"skillswap_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniqueCategory isolates catalog assertions on the shared database.
func uniqueCategory(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

type skillListPayload struct {
	Skills []dto.CatalogListing `json:"skills"`
	Total  int                  `json:"total"`
}

func TestSkillLifecycle(t *testing.T) {
	server := GetTestServer(t)
	mentor := server.CreateAndLoginUser(t, "Skill Mentor")
	category := uniqueCategory("Programming")

	skillID := server.AddSkill(t, mentor, "Go Concurrency", category, "Advanced")

	// Owner's list shows it.
	recorder := server.SendRequest(t, http.MethodGet, "/api/v1/skills/my", nil, mentor.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var mine skillListPayload
	helpers.DecodeResponse(t, recorder, &mine)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, skillID, mine.Skills[0].ID)

	// The public catalog shows it, without authentication.
	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/skills?category="+category, nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var catalog skillListPayload
	helpers.DecodeResponse(t, recorder, &catalog)
	require.Equal(t, 1, catalog.Total)
	assert.Equal(t, "Go Concurrency", catalog.Skills[0].Name)
	assert.Equal(t, mentor.FullName, catalog.Skills[0].MentorName)
	assert.Nil(t, catalog.Skills[0].Rating)

	// Public detail view.
	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/skills/"+skillID, nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var detail dto.CatalogDetail
	helpers.DecodeResponse(t, recorder, &detail)
	assert.Equal(t, mentor.ID, detail.MentorID)
	assert.Nil(t, detail.Rating)

	// Delete, then both catalog and detail stop serving it.
	recorder = server.SendRequest(t, http.MethodDelete, "/api/v1/skills/"+skillID, nil, mentor.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/skills?category="+category, nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	helpers.DecodeResponse(t, recorder, &catalog)
	assert.Equal(t, 0, catalog.Total)

	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/skills/"+skillID, nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddSkill_Validation(t *testing.T) {
	server := GetTestServer(t)
	mentor := server.CreateAndLoginUser(t, "Validation Mentor")

	recorder := server.SendRequest(t, http.MethodPost, "/api/v1/skills", map[string]string{
		"name":     "Go",
		"category": "Programming",
		"level":    "Expert",
	}, mentor.AccessToken)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())

	recorder = server.SendRequest(t, http.MethodPost, "/api/v1/skills", map[string]string{
		"category": "Programming",
		"level":    "Beginner",
	}, mentor.AccessToken)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())
}

func TestDeleteSkill_NotOwner(t *testing.T) {
	server := GetTestServer(t)
	mentor := server.CreateAndLoginUser(t, "Owning Mentor")
	intruder := server.CreateAndLoginUser(t, "Other User")

	skillID := server.AddSkill(t, mentor, "Watercolor", uniqueCategory("Art"), "Beginner")

	recorder := server.SendRequest(t, http.MethodDelete, "/api/v1/skills/"+skillID, nil, intruder.AccessToken)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Still served publicly.
	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/skills/"+skillID, nil, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
