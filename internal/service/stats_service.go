package service

import "github.com/nonmagicfly/bot-ai-cursor/internal/repository"

// StatsService пересчитывает агрегатные счётчики хранилища. Используется
// обновлятором метрик (раз в 30 секунд) и админ-панелью.
type StatsService struct {
	programs   repository.ProgramRepository
	records    repository.RecordRepository
	users      repository.UserRepository
	operations repository.OperationRepository
}

func NewStatsService(
	programs repository.ProgramRepository,
	records repository.RecordRepository,
	users repository.UserRepository,
	operations repository.OperationRepository,
) *StatsService {
	return &StatsService{
		programs:   programs,
		records:    records,
		users:      users,
		operations: operations,
	}
}

func (s *StatsService) Collect() (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.UsersTotal, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.UsersActiveToday, err = s.operations.CountDistinctUsersToday(); err != nil {
		return nil, err
	}
	if stats.ProgramsTotal, err = s.programs.Count(); err != nil {
		return nil, err
	}
	if stats.ProgramsActive, err = s.programs.CountActive(); err != nil {
		return nil, err
	}
	if stats.RecordsTotal, err = s.records.Count(); err != nil {
		return nil, err
	}
	if stats.RecordsToday, err = s.records.CountToday(); err != nil {
		return nil, err
	}
	if stats.OperationsToday, err = s.operations.CountTodayByType(); err != nil {
		return nil, err
	}

	return stats, nil
}
