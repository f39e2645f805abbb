package service

import (
	"context"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/entity"
	"second-brain-be/internal/repository/specification"
	"second-brain-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// recentLimit caps the dashboard display lists. The counts next to them come
// from dedicated count queries: the original frontend showed len(recentTasks)
// as "Active Tasks", which undercounts past five.
const recentLimit = 5

type IDashboardService interface {
	Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummary, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
	}
}

func (s *dashboardService) Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedBy{UserID: userId}

	var (
		recentNotes     []*entity.Note
		recentTasks     []*entity.Task
		inboxCount      int64
		totalNotes      int64
		activeTaskCount int64
	)

	// The five reads are independent; issue them concurrently and join.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		recentNotes, err = uow.NoteRepository().FindAll(gctx,
			owned,
			specification.OrderBy{Field: "updated_at", Desc: true},
			specification.Limit{N: recentLimit},
		)
		return err
	})

	g.Go(func() error {
		var err error
		recentTasks, err = uow.TaskRepository().FindAll(gctx,
			owned,
			specification.ByCompleted{Completed: false},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Limit{N: recentLimit},
		)
		return err
	})

	g.Go(func() error {
		var err error
		inboxCount, err = uow.NoteRepository().Count(gctx, owned, specification.InboxOnly{})
		return err
	})

	g.Go(func() error {
		var err error
		totalNotes, err = uow.NoteRepository().Count(gctx, owned)
		return err
	})

	g.Go(func() error {
		var err error
		activeTaskCount, err = uow.TaskRepository().Count(gctx, owned, specification.ByCompleted{Completed: false})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		RecentNotes:     dto.NewNoteResponses(recentNotes),
		RecentTasks:     dto.NewTaskResponses(recentTasks),
		InboxCount:      inboxCount,
		TotalNotes:      totalNotes,
		ActiveTaskCount: activeTaskCount,
	}, nil
}
