package mapper

import (
	"second-brain-be/internal/entity"
	"second-brain-be/internal/model"
)

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) ToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}

	return &entity.Tag{
		Id:        t.Id,
		Name:      t.Name,
		UserId:    t.UserId,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TagMapper) ToEntities(tags []*model.Tag) []*entity.Tag {
	entities := make([]*entity.Tag, len(tags))
	for i, t := range tags {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

// ToEntityValues maps the preloaded association slice carried on notes and tasks.
func (m *TagMapper) ToEntityValues(tags []model.Tag) []entity.Tag {
	if tags == nil {
		return nil
	}
	entities := make([]entity.Tag, len(tags))
	for i := range tags {
		entities[i] = *m.ToEntity(&tags[i])
	}
	return entities
}
