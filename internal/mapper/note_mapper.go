package mapper

import (
	"second-brain-be/internal/entity"
	"second-brain-be/internal/model"
)

type NoteMapper struct {
	tagMapper *TagMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{tagMapper: NewTagMapper()}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Inbox:     n.Inbox,
		UserId:    n.UserId,
		Tags:      m.tagMapper.ToEntityValues(n.Tags),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Inbox:     n.Inbox,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
