package services

import (
	"errors"
	"strings"
	"time"

	"github.com/M-harib/TaskFlow/database"
	"github.com/M-harib/TaskFlow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	CreateTask(db *database.Database, userID uuid.UUID, input models.TaskInput) (models.Task, error)
	GetTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error)
	UpdateTask(db *database.Database, userID uuid.UUID, id uuid.UUID, update models.TaskUpdate) error
	DeleteTask(db *database.Database, userID uuid.UUID, id uuid.UUID) error
}

type TaskService struct{}

// CreateTask persists a new task owned by userID. Status and creation time
// are fixed server-side; the client cannot set them.
func (s *TaskService) CreateTask(db *database.Database, userID uuid.UUID, input models.TaskInput) (models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, ErrInvalidInput
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityLow
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      models.StatusPending,
		Deadline:    strings.TrimSpace(input.Deadline),
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// GetTasks returns every task owned by userID in creation order. A user with
// no tasks gets an empty slice, not an error.
func (s *TaskService) GetTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	result := db.DB.Where("user_id = ?", userID).Order("created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of update to the task. The lookup is
// scoped to the owner, so a task belonging to another user is reported as
// not found, never as forbidden.
func (s *TaskService) UpdateTask(db *database.Database, userID uuid.UUID, id uuid.UUID, update models.TaskUpdate) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	fields := update.Fields()
	if len(fields) > 0 {
		if err := tx.Model(&task).Updates(fields).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// DeleteTask permanently removes the task. Same owner-scoped lookup and not
// found semantics as UpdateTask.
func (s *TaskService) DeleteTask(db *database.Database, userID uuid.UUID, id uuid.UUID) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
