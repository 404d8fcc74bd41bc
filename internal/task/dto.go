// AngelaMos | 2026
// dto.go

package task

import (
	"time"
)

type CreateTaskRequest struct {
	ContactID   *string    `json:"contact_id"`
	Title       string     `json:"title"       validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	ContactID   *string    `json:"contact_id"`
	Title       *string    `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	ContactID   *string    `json:"contact_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

func ToTaskResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ContactID:   t.ContactID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTaskResponseList(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToTaskResponse(&t))
	}
	return responses
}
