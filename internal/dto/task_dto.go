package dto

import (
	"time"

	"github.com/google/uuid"

	"second-brain-be/internal/entity"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Habit       bool    `json:"habit"`
}

type UpdateTaskRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Habit       *bool     `json:"habit"`
	Completed   *bool     `json:"completed"`
}

// ListTasksFilter mirrors the query string. Completed is always applied and
// defaults to false when the parameter is absent; Habit narrows only when true.
type ListTasksFilter struct {
	Completed bool
	Habit     bool
}

type TaskResponse struct {
	Id          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	DueDate     *time.Time    `json:"dueDate"`
	Habit       bool          `json:"habit"`
	Completed   bool          `json:"completed"`
	UserId      uuid.UUID     `json:"userId"`
	Tags        []TagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func NewTaskResponse(t *entity.Task) *TaskResponse {
	return &TaskResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Habit:       t.Habit,
		Completed:   t.Completed,
		UserId:      t.UserId,
		Tags:        NewTagResponses(t.Tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []*entity.Task) []*TaskResponse {
	res := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, NewTaskResponse(t))
	}
	return res
}
