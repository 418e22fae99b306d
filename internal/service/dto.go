package service

// ParsedExercise — разобранная строка тела программы.
type ParsedExercise struct {
	Name string
	Sets int
}

// Stats — агрегатные счётчики хранилища для метрик и админ-панели.
type Stats struct {
	UsersTotal       int64            `json:"users_total"`
	UsersActiveToday int64            `json:"users_active_today"`
	ProgramsTotal    int64            `json:"programs_total"`
	ProgramsActive   int64            `json:"programs_active"`
	RecordsTotal     int64            `json:"records_total"`
	RecordsToday     int64            `json:"records_today"`
	OperationsToday  map[string]int64 `json:"operations_today"`
}
