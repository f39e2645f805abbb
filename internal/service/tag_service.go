package service

import (
	"context"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/repository/specification"
	"second-brain-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITagService interface {
	List(ctx context.Context, userId uuid.UUID) ([]dto.TagResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) List(ctx context.Context, userId uuid.UUID) ([]dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, dto.NewTagResponse(t))
	}
	return res, nil
}
