package mapper

import (
	"second-brain-be/internal/entity"
	"second-brain-be/internal/model"
)

type TaskMapper struct {
	tagMapper *TagMapper
}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{tagMapper: NewTagMapper()}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	return &entity.Task{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Habit:       t.Habit,
		Completed:   t.Completed,
		UserId:      t.UserId,
		Tags:        m.tagMapper.ToEntityValues(t.Tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	return &model.Task{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Habit:       t.Habit,
		Completed:   t.Completed,
		UserId:      t.UserId,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
