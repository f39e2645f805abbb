package service

import (
	"context"
	"encoding/json"
	"time"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/entity"
	"second-brain-be/internal/pkg/logger"
	"second-brain-be/internal/pkg/serverutils"
	"second-brain-be/internal/repository/specification"
	"second-brain-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uuid.UUID, filter dto.ListNotesFilter) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Inbox:     req.Inbox,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publishCapture(ctx, dto.CaptureRecordedMessage{
		Kind:       dto.CaptureKindNote,
		Id:         note.Id,
		UserId:     userId,
		Inbox:      note.Inbox,
		OccurredAt: now,
	})

	return dto.NewNoteResponse(&note), nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, filter dto.ListNotesFilter) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.WithTags{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	// Only the true case narrows; inbox=false returns everything.
	if filter.Inbox {
		specs = append(specs, specification.InboxOnly{})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return dto.NewNoteResponses(notes), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	note.Title = req.Title
	note.Content = req.Content
	if req.Inbox != nil {
		note.Inbox = *req.Inbox
	}
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	return dto.NewNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFoundError("Note not found")
	}

	return uow.NoteRepository().Delete(ctx, id)
}

func (s *noteService) publishCapture(ctx context.Context, msg dto.CaptureRecordedMessage) {
	payload, err := json.Marshal(msg)
	if err == nil {
		err = s.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		// Activity events are auxiliary; the create already succeeded.
		s.log.Warn("note", "failed to publish capture event", map[string]interface{}{
			"note_id": msg.Id,
			"error":   err.Error(),
		})
	}
}
