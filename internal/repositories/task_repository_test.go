package repositories

import (
	"testing"
	"time"

	"crm-service/internal/database"
	"crm-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestTaskRepository(t *testing.T) {
	suite.Run(t, new(TaskRepositorySuite))
}

type TaskRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TaskRepositoryInterface
	customer *models.Customer
}

func (s *TaskRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTaskRepository(s.db.DB)
	s.customer = database.CreateTestCustomer(s.T(), s.db, "Acme", "acme@example.com", "uid-acme")
}

func (s *TaskRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TaskRepositorySuite) TestCreate_DefaultsToOpen() {
	task := &models.Task{CustomerID: s.customer.ID, Title: "Call", DueAt: time.Now().Add(time.Hour)}

	s.NoError(s.repo.Create(task))
	s.Equal(models.TaskStatusOpen, task.Status)

	found, err := s.repo.GetByID(task.ID)
	s.NoError(err)
	s.Equal("Call", found.Title)
}

func (s *TaskRepositorySuite) TestCreate_RejectsUnknownStatus() {
	task := &models.Task{CustomerID: s.customer.ID, Title: "Call", DueAt: time.Now(), Status: "archived"}
	s.ErrorIs(s.repo.Create(task), models.ErrInvalidTaskStatus)
}

func (s *TaskRepositorySuite) TestList_FiltersAndOrdersByDueDate() {
	now := time.Now().UTC()
	late := &models.Task{CustomerID: s.customer.ID, Title: "Late", DueAt: now.Add(48 * time.Hour)}
	soon := &models.Task{CustomerID: s.customer.ID, Title: "Soon", DueAt: now.Add(time.Hour)}
	done := &models.Task{CustomerID: s.customer.ID, Title: "Done", DueAt: now, Status: models.TaskStatusDone}
	for _, task := range []*models.Task{late, soon, done} {
		s.Require().NoError(s.repo.Create(task))
	}

	open, err := s.repo.List(TaskFilter{CustomerID: &s.customer.ID, Status: models.TaskStatusOpen})
	s.NoError(err)
	s.Require().Len(open, 2)
	s.Equal(soon.ID, open[0].ID)
	s.Equal(late.ID, open[1].ID)

	cutoff := now.Add(2 * time.Hour)
	due, err := s.repo.List(TaskFilter{DueBefore: &cutoff})
	s.NoError(err)
	s.Len(due, 2)

	other := uuid.New()
	none, err := s.repo.List(TaskFilter{CustomerID: &other})
	s.NoError(err)
	s.Empty(none)
}

func (s *TaskRepositorySuite) TestUpdateAndDelete() {
	task := &models.Task{CustomerID: s.customer.ID, Title: "Call", DueAt: time.Now()}
	s.Require().NoError(s.repo.Create(task))

	task.Status = models.TaskStatusDone
	s.NoError(s.repo.Update(task))

	found, err := s.repo.GetByID(task.ID)
	s.NoError(err)
	s.Equal(models.TaskStatusDone, found.Status)

	s.NoError(s.repo.Delete(task.ID))
	s.ErrorIs(s.repo.Delete(task.ID), ErrTaskNotFound)
	_, err = s.repo.GetByID(task.ID)
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *TaskRepositorySuite) TestReplaceByKind_LeavesExactlyOne() {
	manual := &models.Task{CustomerID: s.customer.ID, Title: "Manual", DueAt: time.Now()}
	s.Require().NoError(s.repo.Create(manual))
	for i := 0; i < 2; i++ {
		s.Require().NoError(s.repo.Create(models.NewFollowUpTask(s.customer.ID, time.Now().AddDate(0, -i, 0))))
	}

	last := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	s.NoError(s.repo.ReplaceByKind(models.NewFollowUpTask(s.customer.ID, last)))

	followUps, err := s.repo.List(TaskFilter{CustomerID: &s.customer.ID, Kind: models.TaskKindFollowUp})
	s.NoError(err)
	s.Require().Len(followUps, 1)
	s.True(time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC).Equal(followUps[0].DueAt))

	_, err = s.repo.GetByID(manual.ID)
	s.NoError(err, "tasks of other kinds are untouched")
}

func (s *TaskRepositorySuite) TestDeleteByCustomerAndKind() {
	s.Require().NoError(s.repo.Create(models.NewFollowUpTask(s.customer.ID, time.Now())))

	deleted, err := s.repo.DeleteByCustomerAndKind(s.customer.ID, models.TaskKindFollowUp)
	s.NoError(err)
	s.Equal(int64(1), deleted)
}
