package service

import (
	"strconv"
	"strings"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
)

// Разделитель между названием упражнения и числом подходов.
const exerciseDelimiter = `\`

type ProgramService struct {
	repo repository.ProgramRepository
}

func NewProgramService(repo repository.ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

// ParseProgramBody разбирает текст программы построчно. Формат строки:
// упражнение\подходы, где подходы — целое число не меньше единицы.
// Строка с другим числом полей, с нечисловым или неположительным
// количеством подходов молча пропускается: частичный успех без
// построчных ошибок. Принятые строки получают позиции 0..n-1 в порядке
// ввода.
func ParseProgramBody(text string) []ParsedExercise {
	var parsed []ParsedExercise

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, exerciseDelimiter)
		if len(parts) != 2 {
			continue
		}

		sets, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || sets < 1 {
			continue
		}

		parsed = append(parsed, ParsedExercise{
			Name: strings.TrimSpace(parts[0]),
			Sets: sets,
		})
	}

	return parsed
}

// CreateProgram разбирает тело и создаёт программу вместе с упражнениями.
// Если ни одна строка не разобралась, программа не создаётся вовсе —
// возвращается ErrNoExercisesParsed.
func (s *ProgramService) CreateProgram(name, body string) (*models.Program, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, ErrEmptyProgramName
	}

	parsed := ParseProgramBody(body)
	if len(parsed) == 0 {
		return nil, 0, ErrNoExercisesParsed
	}

	exercises := make([]models.Exercise, len(parsed))
	for i, p := range parsed {
		exercises[i] = models.Exercise{
			Name:     p.Name,
			Sets:     p.Sets,
			Position: i,
		}
	}

	program, err := s.repo.CreateWithExercises(name, exercises)
	if err != nil {
		return nil, 0, err
	}
	return program, len(exercises), nil
}

func (s *ProgramService) ListActive() ([]*models.Program, error) {
	return s.repo.ListActive()
}

func (s *ProgramService) ListAll() ([]*models.Program, error) {
	return s.repo.ListAll()
}

func (s *ProgramService) ListExercises(programID uint) ([]*models.Exercise, error) {
	return s.repo.ListExercises(programID)
}

func (s *ProgramService) ArchiveAll() error {
	return s.repo.ArchiveAll()
}

func (s *ProgramService) DeleteAll() error {
	return s.repo.DeleteAll()
}
