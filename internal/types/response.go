package types

import (
	"time"

	"github.com/trackr-dev/trackr/internal/models"
)

const dateLayout = "2006-01-02"

// Response is the envelope every endpoint renders.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Error(message string) Response {
	return Response{Success: false, Message: message}
}

// UserResponse is the public view of a user. The password hash never
// leaves the credential store.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ProjectResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Summary   string               `json:"summary"`
	Status    models.ProjectStatus `json:"status"`
	PI        UserResponse         `json:"pi"`
	Tags      string               `json:"tags"`
	StartDate string               `json:"start_date"`
	EndDate   *string              `json:"end_date,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type MilestoneResponse struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     string       `json:"due_date"`
	IsCompleted bool         `json:"is_completed"`
	CreatedBy   UserResponse `json:"created_by"`
}

type DocumentResponse struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URLOrPath   string       `json:"url_or_path"`
	UploadedBy  UserResponse `json:"uploaded_by"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewProjectResponse(p models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Status:    p.Status,
		PI:        NewUserResponse(p.PI),
		Tags:      p.Tags,
		StartDate: time.Time(p.StartDate).Format(dateLayout),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.EndDate != nil {
		end := time.Time(*p.EndDate).Format(dateLayout)
		resp.EndDate = &end
	}

	return resp
}

func NewMilestoneResponse(m models.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     time.Time(m.DueDate).Format(dateLayout),
		IsCompleted: m.IsCompleted,
		CreatedBy:   NewUserResponse(m.CreatedBy),
	}
}

func NewDocumentResponse(d models.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		Description: d.Description,
		URLOrPath:   d.URLOrPath,
		UploadedBy:  NewUserResponse(d.UploadedBy),
		UploadedAt:  d.UploadedAt,
	}
}
