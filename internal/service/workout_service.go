package service

import (
	"strconv"
	"strings"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
)

type WorkoutService struct {
	programs repository.ProgramRepository
	records  repository.RecordRepository
}

func NewWorkoutService(programs repository.ProgramRepository, records repository.RecordRepository) *WorkoutService {
	return &WorkoutService{programs: programs, records: records}
}

// StartWorkout проверяет выбранную программу по свежему списку активных
// (программа могла уйти в архив между показом кнопок и нажатием) и
// возвращает её упражнения в порядке position.
func (s *WorkoutService) StartWorkout(programID uint) (*models.Program, []*models.Exercise, error) {
	active, err := s.programs.ListActive()
	if err != nil {
		return nil, nil, err
	}

	var program *models.Program
	for _, p := range active {
		if p.ID == programID {
			program = p
			break
		}
	}
	if program == nil {
		return nil, nil, ErrProgramNotActive
	}

	exercises, err := s.programs.ListExercises(programID)
	if err != nil {
		return nil, nil, err
	}
	if len(exercises) == 0 {
		return nil, nil, ErrProgramEmpty
	}

	return program, exercises, nil
}

// RecordSet сохраняет один выполненный подход.
func (s *WorkoutService) RecordSet(programID, exerciseID uint, setNumber int, weight float64) error {
	_, err := s.records.Create(programID, exerciseID, setNumber, weight)
	return err
}

// ParseWeight разбирает вес из свободного текста. Десятичная запятая
// нормализуется в точку: "82,5" и "82.5" равнозначны.
func ParseWeight(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}
