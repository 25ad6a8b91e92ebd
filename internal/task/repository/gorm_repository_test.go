package repository

import (
	"testing"
	"time"

	"taskboard-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Task{}))

	return db
}

func TestTaskRepository_CreateAssignsID(t *testing.T) {
	repo := NewGormTaskRepository(setupTestDB(t))

	task := &domain.Task{
		UserID:   "user-1",
		Title:    "Write spec",
		Status:   domain.StatusToDo,
		Priority: domain.PriorityHigh,
	}
	require.NoError(t, repo.Create(task))
	assert.NotEmpty(t, task.ID)

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Write spec", found.Title)
	assert.Equal(t, domain.PriorityHigh, found.Priority)
}

func TestTaskRepository_FindByOwner(t *testing.T) {
	repo := NewGormTaskRepository(setupTestDB(t))

	for i, title := range []string{"first", "second", "third"} {
		task := &domain.Task{
			UserID:   "user-1",
			Title:    title,
			Status:   domain.StatusToDo,
			Priority: domain.PriorityMedium,
		}
		require.NoError(t, repo.Create(task))
		// sqlite timestamps are coarse; force distinct created_at
		task.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Update(task))
	}
	require.NoError(t, repo.Create(&domain.Task{
		UserID:   "user-2",
		Title:    "someone else's",
		Status:   domain.StatusDone,
		Priority: domain.PriorityLow,
	}))

	tasks, err := repo.FindByOwner("user-1", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3, "only the owner's tasks are visible")
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestTaskRepository_FindByOwnerStatusFilter(t *testing.T) {
	repo := NewGormTaskRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&domain.Task{UserID: "u", Title: "a", Status: domain.StatusToDo, Priority: domain.PriorityMedium}))
	require.NoError(t, repo.Create(&domain.Task{UserID: "u", Title: "b", Status: domain.StatusDone, Priority: domain.PriorityMedium}))

	done := domain.StatusDone
	tasks, err := repo.FindByOwner("u", &done)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestTaskRepository_UpdateAndDelete(t *testing.T) {
	repo := NewGormTaskRepository(setupTestDB(t))

	task := &domain.Task{UserID: "u", Title: "move me", Status: domain.StatusToDo, Priority: domain.PriorityMedium}
	require.NoError(t, repo.Create(task))

	task.Status = domain.StatusInProgress
	require.NoError(t, repo.Update(task))

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, found.Status)
	assert.Equal(t, "move me", found.Title)

	require.NoError(t, repo.Delete(task.ID))
	found, err = repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTaskRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewGormTaskRepository(setupTestDB(t))

	found, err := repo.FindByID("no-such-task")
	require.NoError(t, err)
	assert.Nil(t, found)
}
