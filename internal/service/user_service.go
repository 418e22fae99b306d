package service

import (
	"time"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
)

type UserService struct {
	users      repository.UserRepository
	operations repository.OperationRepository
}

func NewUserService(users repository.UserRepository, operations repository.OperationRepository) *UserService {
	return &UserService{users: users, operations: operations}
}

// Register создаёт или обновляет пользователя по telegram id.
func (s *UserService) Register(telegramID int64, username, firstName, lastName string) error {
	return s.users.Upsert(&models.User{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LastActivity: time.Now(),
	})
}

// LogOperation пишет действие пользователя в журнал.
func (s *UserService) LogOperation(telegramID int64, operationType string) error {
	return s.operations.Log(telegramID, operationType)
}

func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.users.FindAll()
}
