package services

import (
	"testing"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSkillTest(t *testing.T) (SkillService, testRepos, *models.User) {
	t.Helper()

	db := newTestDB(t)
	repos := newTestRepos(db)
	owner := seedUser(t, repos, "Alice Mentor", "alice@example.com")

	return NewSkillService(repos.skills, repos.users), repos, owner
}

func addSkill(t *testing.T, svc SkillService, userID, name, category string, level models.SkillLevel) string {
	t.Helper()

	resp, err := svc.AddSkill(userID, &dto.AddSkillRequest{Name: name, Category: category, Level: level})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SkillID)
	return resp.SkillID
}

func TestAddSkill_AppearsInOwnerList(t *testing.T) {
	svc, _, owner := setupSkillTest(t)

	skillID := addSkill(t, svc, owner.ID, "Go", "Programming", models.SkillLevelAdvanced)

	skills, err := svc.GetUserSkills(owner.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, skillID, skills[0].ID)
	assert.Equal(t, "Go", skills[0].Name)
	assert.False(t, skills[0].AddedAt.IsZero())
}

func TestAddSkill_RejectsUnknownLevel(t *testing.T) {
	svc, _, owner := setupSkillTest(t)

	_, err := svc.AddSkill(owner.ID, &dto.AddSkillRequest{
		Name:     "Go",
		Category: "Programming",
		Level:    models.SkillLevel("Expert"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSkillLevel)
}

func TestAddSkill_UnknownOwner(t *testing.T) {
	svc, _, _ := setupSkillTest(t)

	_, err := svc.AddSkill("no-such-user", &dto.AddSkillRequest{
		Name:     "Go",
		Category: "Programming",
		Level:    models.SkillLevelBeginner,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListCatalog_CategoryFilter(t *testing.T) {
	svc, repos, owner := setupSkillTest(t)
	other := seedUser(t, repos, "Bob Mentor", "bob@example.com")

	addSkill(t, svc, owner.ID, "Go", "Programming", models.SkillLevelAdvanced)
	addSkill(t, svc, owner.ID, "Watercolor", "Art", models.SkillLevelBeginner)
	addSkill(t, svc, other.ID, "Rust", "Programming", models.SkillLevelIntermediate)

	// "All" and empty both mean no filter.
	for _, category := range []string{"All", ""} {
		catalog, err := svc.ListCatalog(category)
		require.NoError(t, err)
		assert.Len(t, catalog, 3, "category=%q", category)
	}

	catalog, err := svc.ListCatalog("Programming")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	for _, listing := range catalog {
		assert.Equal(t, "Programming", listing.Category)
		assert.Nil(t, listing.Rating)
		assert.NotEmpty(t, listing.MentorName)
	}

	// The match is exact, not case-folded.
	catalog, err = svc.ListCatalog("programming")
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestGetSkillDetail(t *testing.T) {
	svc, repos, owner := setupSkillTest(t)

	userService := NewUserService(repos.users)
	require.NoError(t, userService.UpdateProfile(owner.ID, &dto.UpdateProfileRequest{
		FullName: "Alice Mentor",
		Bio:      "15 years of Go",
		Location: "Amsterdam",
	}))

	skillID := addSkill(t, svc, owner.ID, "Go", "Programming", models.SkillLevelAdvanced)

	detail, err := svc.GetSkillDetail(skillID)
	require.NoError(t, err)
	assert.Equal(t, "Go", detail.Name)
	assert.Equal(t, owner.ID, detail.MentorID)
	assert.Equal(t, "Alice Mentor", detail.MentorName)
	assert.Equal(t, "15 years of Go", detail.MentorBio)
	assert.Equal(t, "Amsterdam", detail.MentorLocation)
	assert.Nil(t, detail.Rating)

	_, err = svc.GetSkillDetail("no-such-skill")
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)
}

func TestDeleteSkill(t *testing.T) {
	svc, _, owner := setupSkillTest(t)

	skillID := addSkill(t, svc, owner.ID, "Go", "Programming", models.SkillLevelAdvanced)

	require.NoError(t, svc.DeleteSkill(owner.ID, skillID))

	skills, err := svc.GetUserSkills(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, skills)

	catalog, err := svc.ListCatalog("")
	require.NoError(t, err)
	assert.Empty(t, catalog)

	_, err = svc.GetSkillDetail(skillID)
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)
}

func TestDeleteSkill_OwnershipEnforced(t *testing.T) {
	svc, repos, owner := setupSkillTest(t)
	other := seedUser(t, repos, "Bob Mentor", "bob@example.com")

	skillID := addSkill(t, svc, owner.ID, "Go", "Programming", models.SkillLevelAdvanced)

	err := svc.DeleteSkill(other.ID, skillID)
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)

	// Still present for its real owner.
	skills, err := svc.GetUserSkills(owner.ID)
	require.NoError(t, err)
	assert.Len(t, skills, 1)
}
