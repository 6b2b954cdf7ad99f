package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/models"
)

func TestUserList(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	member := seedUser(t, gdb, "bob", models.RoleMember)

	users, err := svc.List(asIdentity(admin))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.List(asIdentity(member))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUserGet(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	viewer := seedUser(t, gdb, "vera", models.RoleViewer)

	user, err := svc.Get(asIdentity(viewer), viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, "vera", user.Username)

	_, err = svc.Get(asIdentity(viewer), "USR-missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRole(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	member := seedUser(t, gdb, "bob", models.RoleMember)

	user, err := svc.UpdateRole(asIdentity(admin), member.ID, "PI")
	require.NoError(t, err)
	assert.Equal(t, models.RolePI, user.Role)
}

func TestUpdateRole_InvalidRole(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	member := seedUser(t, gdb, "bob", models.RoleMember)

	_, err := svc.UpdateRole(asIdentity(admin), member.ID, "OVERLORD")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)

	var unchanged models.User
	require.NoError(t, gdb.First(&unchanged, "id = ?", member.ID).Error)
	assert.Equal(t, models.RoleMember, unchanged.Role)
}

func TestUpdateRole_AdminProtected(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	other := seedUser(t, gdb, "root", models.RoleAdmin)

	_, err := svc.UpdateRole(asIdentity(admin), other.ID, "VIEWER")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation, "an admin's role can never be changed, even by an admin")
}

func TestUpdateRole_Forbidden(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	member := seedUser(t, gdb, "bob", models.RoleMember)

	_, err := svc.UpdateRole(asIdentity(pi), member.ID, "VIEWER")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDeleteUser(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	member := seedUser(t, gdb, "bob", models.RoleMember)

	require.NoError(t, svc.Delete(asIdentity(admin), member.ID))

	err := svc.Delete(asIdentity(admin), member.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "deleting twice must surface NotFound")
}

func TestDeleteUser_ReferencedByProject(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	pi := seedUser(t, gdb, "prof", models.RolePI)
	project := seedProject(t, gdb, pi)

	_, err := NewMilestoneService(gdb).Create(asIdentity(pi), project.ID, MilestoneInput{
		Title:       "Sequencing complete",
		DueDate:     date(2024, 6, 1),
		CreatedByID: pi.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(asIdentity(admin), pi.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)

	var projects, milestones int64
	require.NoError(t, gdb.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, gdb.Model(&models.Milestone{}).Count(&milestones).Error)
	assert.EqualValues(t, 1, projects, "a refused user delete must leave the project tree intact")
	assert.EqualValues(t, 1, milestones)
}

func TestDeleteUser_ReferencedAsUploader(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	pi := seedUser(t, gdb, "prof", models.RolePI)
	member := seedUser(t, gdb, "bob", models.RoleMember)
	project := seedProject(t, gdb, pi)

	docs := NewDocumentService(gdb)
	doc, err := docs.Create(asIdentity(member), project.ID, DocumentInput{
		Title:        "Protocol",
		URLOrPath:    "/files/protocol.pdf",
		UploadedByID: member.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(asIdentity(admin), member.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)

	require.NoError(t, docs.Delete(asIdentity(admin), doc.ID))
	assert.NoError(t, svc.Delete(asIdentity(admin), member.ID), "deletable once nothing references the user")
}

func TestDeleteUser_AdminProtected(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewUserService(gdb)

	admin := seedUser(t, gdb, "admin", models.RoleAdmin)
	other := seedUser(t, gdb, "root", models.RoleAdmin)

	err := svc.Delete(asIdentity(admin), other.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
