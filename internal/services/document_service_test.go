package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackr-dev/trackr/internal/apperrors"
	"github.com/trackr-dev/trackr/internal/models"
)

func TestCreateDocument_MemberAllowed(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDocumentService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	member := seedUser(t, gdb, "bob", models.RoleMember)
	project := seedProject(t, gdb, pi)

	document, err := svc.Create(asIdentity(member), project.ID, DocumentInput{
		Title:        "Protocol",
		Description:  "Lab protocol",
		URLOrPath:    "s3://bucket/protocol.pdf",
		UploadedByID: member.ID,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(document.ID, "DOC-"))
	assert.Equal(t, project.ID, document.ProjectID)
	assert.Equal(t, member.ID, document.UploadedByID)
	assert.False(t, document.UploadedAt.IsZero(), "uploadedAt is set at creation")
}

func TestCreateDocument_ViewerForbidden(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDocumentService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	viewer := seedUser(t, gdb, "vera", models.RoleViewer)
	project := seedProject(t, gdb, pi)

	_, err := svc.Create(asIdentity(viewer), project.ID, DocumentInput{
		Title:        "Protocol",
		URLOrPath:    "s3://bucket/protocol.pdf",
		UploadedByID: viewer.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateDocument_UnknownProject(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDocumentService(gdb)

	member := seedUser(t, gdb, "bob", models.RoleMember)

	_, err := svc.Create(asIdentity(member), "PRJ-missing", DocumentInput{
		Title:        "Protocol",
		URLOrPath:    "s3://bucket/protocol.pdf",
		UploadedByID: member.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	require.NoError(t, gdb.Model(&models.Document{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteDocument(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDocumentService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	member := seedUser(t, gdb, "bob", models.RoleMember)
	project := seedProject(t, gdb, pi)

	document, err := svc.Create(asIdentity(member), project.ID, DocumentInput{
		Title:        "Protocol",
		URLOrPath:    "s3://bucket/protocol.pdf",
		UploadedByID: member.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(asIdentity(member), document.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "members may upload but not delete")

	require.NoError(t, svc.Delete(asIdentity(pi), document.ID))

	err = svc.Delete(asIdentity(pi), document.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListDocumentsByProject(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDocumentService(gdb)

	pi := seedUser(t, gdb, "prof", models.RolePI)
	project := seedProject(t, gdb, pi)

	_, err := svc.Create(asIdentity(pi), project.ID, DocumentInput{
		Title:        "Protocol",
		URLOrPath:    "s3://bucket/protocol.pdf",
		UploadedByID: pi.ID,
	})
	require.NoError(t, err)

	documents, err := svc.ListByProject(asIdentity(pi), project.ID)
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "prof", documents[0].UploadedBy.Username)
}
