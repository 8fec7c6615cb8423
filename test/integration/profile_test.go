package integration

import (
	"net/http"
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetAndUpdate(t *testing.T) {
	server := GetTestServer(t)
	user := server.CreateAndLoginUser(t, "Profile Owner")
	server.AddSkill(t, user, "Bouldering", uniqueCategory("Sport"), "Intermediate")

	recorder := server.SendRequest(t, http.MethodGet, "/api/v1/users/me", nil, user.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var profile dto.ProfileResponse
	helpers.DecodeResponse(t, recorder, &profile)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Email, profile.Email)
	require.Len(t, profile.Skills, 1)
	assert.Equal(t, "Bouldering", profile.Skills[0].Name)

	recorder = server.SendRequest(t, http.MethodPut, "/api/v1/users/me", dto.UpdateProfileRequest{
		FullName: "Renamed Owner",
		Bio:      "climbs on weekends",
		Location: "Innsbruck",
	}, user.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/users/me", nil, user.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code)
	helpers.DecodeResponse(t, recorder, &profile)
	assert.Equal(t, "Renamed Owner", profile.FullName)
	assert.Equal(t, "climbs on weekends", profile.Bio)
	assert.Equal(t, "Innsbruck", profile.Location)

	// full_name is mandatory on update.
	recorder = server.SendRequest(t, http.MethodPut, "/api/v1/users/me",
		map[string]string{"bio": "no name"}, user.AccessToken)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// Requests snapshot the names they were created with; later profile edits do
// not rewrite history.
func TestProfileRename_DoesNotRewriteRequests(t *testing.T) {
	server := GetTestServer(t)
	mentor := server.CreateAndLoginUser(t, "Original Name")
	learner := server.CreateAndLoginUser(t, "Snapshot Learner")

	skillID := server.AddSkill(t, mentor, "Beekeeping", uniqueCategory("Nature"), "Advanced")

	recorder := server.SendRequest(t, http.MethodPost, "/api/v1/requests",
		dto.CreateRequestRequest{SkillID: skillID}, learner.AccessToken)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = server.SendRequest(t, http.MethodPut, "/api/v1/users/me", dto.UpdateProfileRequest{
		FullName: "Changed Name",
	}, mentor.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = server.SendRequest(t, http.MethodGet, "/api/v1/requests?type=outgoing", nil, learner.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code)

	var outgoing requestListPayload
	helpers.DecodeResponse(t, recorder, &outgoing)
	require.Equal(t, 1, outgoing.Total)
	assert.Equal(t, "Original Name", outgoing.Requests[0].MentorName)
	assert.Equal(t, models.RequestStatusPending, outgoing.Requests[0].Status)
}
