package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/models"
)

func TestCreateMilestone(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	project := seedProject(t, gdb, pi)

	milestone, err := svc.Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		Description: "All samples sequenced",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(milestone.ID, "MLS-"))
	assert.Equal(t, project.ID, milestone.ProjectID)
	assert.Equal(t, pi.ID, milestone.CreatedByID)
	assert.Equal(t, pi.ID, milestone.CreatedBy.ID)
	assert.False(t, milestone.IsCompleted, "completion flag defaults to false")
}

func TestCreateMilestone_Forbidden(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	member := seedUser(t, gdb, "bob", models.RoleMember)
	project := seedProject(t, gdb, pi)

	_, err := svc.Create(asIdentity(member), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: member.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	var count int64
	require.NoError(t, gdb.Model(&models.Milestone{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateMilestone_UnknownProject(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)

	_, err := svc.Create(asIdentity(pi), "PRJ-missing", MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	require.NoError(t, gdb.Model(&models.Milestone{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "nothing may persist when the parent is missing")
}

func TestCreateMilestone_UnknownUser(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	project := seedProject(t, gdb, pi)

	_, err := svc.Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: "USR-missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateMilestone(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	project := seedProject(t, gdb, pi)

	milestone, err := svc.Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	completed := true

	updated, err := svc.Update(asIdentity(pi), milestone.ID, MilestoneInput{
		Title:       "Sequencing and QC done",
		Description: "Includes quality control",
		DueDate:     date(2024, 4, 1),
		IsCompleted: &completed,
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, milestone.ID, updated.ID)
	assert.Equal(t, "Sequencing and QC done", updated.Title)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, project.ID, updated.ProjectID, "the project parent is immutable")
}

func TestUpdateMilestone_NotFound(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)

	_, err := svc.Update(asIdentity(pi), "MLS-missing", MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMilestone(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	viewer := seedUser(t, gdb, "vera", models.RoleViewer)
	project := seedProject(t, gdb, pi)

	milestone, err := svc.Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(asIdentity(viewer), milestone.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.Delete(asIdentity(pi), milestone.ID))

	err = svc.Delete(asIdentity(pi), milestone.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMilestonesByProject(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewMilestoneService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	viewer := seedUser(t, gdb, "vera", models.RoleViewer)
	project := seedProject(t, gdb, pi)

	_, err := svc.Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing done",
		DueDate:     date(2024, 3, 1),
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	milestones, err := svc.ListByProject(asIdentity(viewer), project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, pi.ID, milestones[0].CreatedBy.ID)

	_, err = svc.ListByProject(asIdentity(viewer), "PRJ-missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
