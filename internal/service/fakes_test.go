package service

import (
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
)

// Фейковые репозитории для юнит-тестов сервисного слоя.

type fakeProgramRepo struct {
	programs  []*models.Program
	exercises map[uint][]*models.Exercise
	nextID    uint
	createErr error
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{exercises: make(map[uint][]*models.Exercise)}
}

func (f *fakeProgramRepo) CreateWithExercises(name string, exercises []models.Exercise) (*models.Program, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	program := &models.Program{ID: f.nextID, Name: name, Active: true}
	f.programs = append(f.programs, program)
	for i := range exercises {
		exercises[i].ID = f.nextID*100 + uint(i)
		exercises[i].ProgramID = program.ID
		f.exercises[program.ID] = append(f.exercises[program.ID], &exercises[i])
	}
	return program, nil
}

func (f *fakeProgramRepo) ListActive() ([]*models.Program, error) {
	var active []*models.Program
	for _, p := range f.programs {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeProgramRepo) ListAll() ([]*models.Program, error) {
	return f.programs, nil
}

func (f *fakeProgramRepo) ListExercises(programID uint) ([]*models.Exercise, error) {
	return f.exercises[programID], nil
}

func (f *fakeProgramRepo) ArchiveAll() error {
	for _, p := range f.programs {
		p.Active = false
	}
	return nil
}

func (f *fakeProgramRepo) DeleteAll() error {
	f.programs = nil
	f.exercises = make(map[uint][]*models.Exercise)
	return nil
}

func (f *fakeProgramRepo) Count() (int64, error) {
	return int64(len(f.programs)), nil
}

func (f *fakeProgramRepo) CountActive() (int64, error) {
	active, _ := f.ListActive()
	return int64(len(active)), nil
}

func programOf(id uint) *models.Program {
	return &models.Program{ID: id, Name: "Пустая", Active: true}
}

type fakeRecordRepo struct {
	created   []*models.Record
	rows      []repository.ReportRow
	createErr error
}

func (f *fakeRecordRepo) Create(programID, exerciseID uint, setNumber int, weight float64) (*models.Record, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	record := &models.Record{
		ID:         uint(len(f.created) + 1),
		ProgramID:  programID,
		ExerciseID: exerciseID,
		SetNumber:  setNumber,
		Weight:     weight,
	}
	f.created = append(f.created, record)
	return record, nil
}

func (f *fakeRecordRepo) FindByPeriod(period repository.Period) ([]repository.ReportRow, error) {
	return f.rows, nil
}

func (f *fakeRecordRepo) Count() (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeRecordRepo) CountToday() (int64, error) {
	return int64(len(f.created)), nil
}
