package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/greenxp-api/internal/models"
)

func TestResolveXP(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		xp         *int
		want       int
	}{
		{"easy ignores xp", "easy", ptr(999), 10},
		{"medium", "medium", nil, 25},
		{"hard ignores xp", "hard", ptr(1), 50},
		{"unknown uses xp", "legendary", ptr(120), 120},
		{"unknown without xp", "legendary", nil, 0},
		{"absent uses xp", "", ptr(7), 7},
		{"absent without xp", "", nil, 0},
		{"case sensitive", "Hard", ptr(3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveXP(tt.difficulty, tt.xp))
		})
	}
}

func TestMissionService_CreateMission(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{
		Title:      "Plant a tree",
		Difficulty: ptr("medium"),
		XP:         ptr(500),
	})
	require.NoError(t, err)
	assert.NotZero(t, mission.ID)
	assert.Equal(t, 25, mission.XP)

	var stored models.Mission
	require.NoError(t, env.db.First(&stored, mission.ID).Error)
	assert.Equal(t, "medium", stored.Difficulty)
	assert.Equal(t, 25, stored.XP)
	assert.Nil(t, stored.Category)
}

func TestMissionService_CreateMissionDefaults(t *testing.T) {
	env := setupServiceTestEnv(t)

	withXP, err := env.missionService.CreateMission(CreateMissionInput{Title: "Pick up litter", XP: ptr(15), Category: ptr("cleanup")})
	require.NoError(t, err)
	assert.Equal(t, "easy", withXP.Difficulty)
	assert.Equal(t, 15, withXP.XP)
	assert.Equal(t, "cleanup", *withXP.Category)

	bare, err := env.missionService.CreateMission(CreateMissionInput{Title: "Turn off lights"})
	require.NoError(t, err)
	assert.Equal(t, "easy", bare.Difficulty)
	assert.Equal(t, 0, bare.XP)

	custom, err := env.missionService.CreateMission(CreateMissionInput{Title: "Build a solar oven", Difficulty: ptr("epic"), XP: ptr(80)})
	require.NoError(t, err)
	assert.Equal(t, "epic", custom.Difficulty)
	assert.Equal(t, 80, custom.XP)
}

func TestMissionService_CreateMissionTitleRequired(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.missionService.CreateMission(CreateMissionInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	missions, err := env.missionService.ListMissions()
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestMissionService_ListMissionsOrderedByID(t *testing.T) {
	env := setupServiceTestEnv(t)

	for _, title := range []string{"C", "A", "B"} {
		_, err := env.missionService.CreateMission(CreateMissionInput{Title: title})
		require.NoError(t, err)
	}

	missions, err := env.missionService.ListMissions()
	require.NoError(t, err)
	require.Len(t, missions, 3)
	assert.Equal(t, "C", missions[0].Title)
	assert.Less(t, missions[0].ID, missions[1].ID)
	assert.Less(t, missions[1].ID, missions[2].ID)
}

func TestMissionService_UpdateMission(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{Title: "Compost", Difficulty: ptr("easy")})
	require.NoError(t, err)

	reload := func() models.Mission {
		var m models.Mission
		require.NoError(t, env.db.First(&m, mission.ID).Error)
		return m
	}

	// difficulty recomputes xp and ignores the supplied value
	require.NoError(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{Difficulty: ptr("hard"), XP: ptr(3)}))
	assert.Equal(t, 50, reload().XP)

	// unknown difficulty takes the supplied xp
	require.NoError(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{Difficulty: ptr("weird"), XP: ptr(33)}))
	updated := reload()
	assert.Equal(t, "weird", updated.Difficulty)
	assert.Equal(t, 33, updated.XP)

	// xp alone is set directly
	require.NoError(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{XP: ptr(12)}))
	assert.Equal(t, 12, reload().XP)

	require.NoError(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{Title: ptr("Compost at home"), Category: ptr("waste")}))
	updated = reload()
	assert.Equal(t, "Compost at home", updated.Title)
	assert.Equal(t, "waste", *updated.Category)
	assert.Equal(t, 12, updated.XP)
}

func TestMissionService_UpdateMissionClearsCategory(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{Title: "Compost", Category: ptr("waste")})
	require.NoError(t, err)

	require.NoError(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{ClearCategory: true}))

	var stored models.Mission
	require.NoError(t, env.db.First(&stored, mission.ID).Error)
	assert.Nil(t, stored.Category)
	assert.Equal(t, "Compost", stored.Title)
}

func TestMissionService_CreateMissionBlankCategoryIsNull(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{Title: "Compost", Category: ptr("")})
	require.NoError(t, err)

	var stored models.Mission
	require.NoError(t, env.db.First(&stored, mission.ID).Error)
	assert.Nil(t, stored.Category)
}

func TestMissionService_UpdateMissionErrors(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{Title: "Compost"})
	require.NoError(t, err)

	assert.ErrorIs(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, env.missionService.UpdateMission(mission.ID, UpdateMissionInput{Title: ptr("")}), ErrTitleEmpty)
	assert.ErrorIs(t, env.missionService.UpdateMission(9999, UpdateMissionInput{XP: ptr(1)}), ErrMissionNotFound)
}

func TestMissionService_DeleteMission(t *testing.T) {
	env := setupServiceTestEnv(t)

	mission, err := env.missionService.CreateMission(CreateMissionInput{Title: "Compost"})
	require.NoError(t, err)

	require.NoError(t, env.missionService.DeleteMission(mission.ID))
	assert.ErrorIs(t, env.missionService.DeleteMission(mission.ID), ErrMissionNotFound)

	missions, err := env.missionService.ListMissions()
	require.NoError(t, err)
	assert.Empty(t, missions)
}
