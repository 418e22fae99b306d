package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
)

// Фейки для юнит-тестов обработчиков: заглушка клиента Telegram и
// репозитории в памяти. Всё потокобезопасно, потому что обработчики
// работают из воркеров.

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// textsFor возвращает тексты сообщений, отправленных в указанный чат.
func (f *fakeSender) textsFor(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var texts []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok && msg.ChatID == chatID {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

type fakeProgramRepo struct {
	mu        sync.Mutex
	programs  []*models.Program
	exercises map[uint][]*models.Exercise
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{exercises: make(map[uint][]*models.Exercise)}
}

func (f *fakeProgramRepo) CreateWithExercises(name string, exercises []models.Exercise) (*models.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	program := &models.Program{ID: uint(len(f.programs) + 1), Name: name, Active: true}
	f.programs = append(f.programs, program)
	for i := range exercises {
		exercises[i].ID = program.ID*100 + uint(i)
		exercises[i].ProgramID = program.ID
		f.exercises[program.ID] = append(f.exercises[program.ID], &exercises[i])
	}
	return program, nil
}

func (f *fakeProgramRepo) ListActive() ([]*models.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []*models.Program
	for _, p := range f.programs {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeProgramRepo) ListAll() ([]*models.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.programs, nil
}

func (f *fakeProgramRepo) ListExercises(programID uint) ([]*models.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exercises[programID], nil
}

func (f *fakeProgramRepo) ArchiveAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.programs {
		p.Active = false
	}
	return nil
}

func (f *fakeProgramRepo) DeleteAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.programs = nil
	f.exercises = make(map[uint][]*models.Exercise)
	return nil
}

func (f *fakeProgramRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.programs)), nil
}

func (f *fakeProgramRepo) CountActive() (int64, error) {
	active, _ := f.ListActive()
	return int64(len(active)), nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	created []*models.Record

	createErr error
	// block задерживает первый Create до закрытия канала, имитируя
	// зависший запрос к базе.
	block     chan struct{}
	blockOnce sync.Once
}

func (f *fakeRecordRepo) Create(programID, exerciseID uint, setNumber int, weight float64) (*models.Record, error) {
	if f.block != nil {
		f.blockOnce.Do(func() { <-f.block })
	}
	f.mu.Lock()
	defer f.mu.Unlock()
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
	return nil, nil
}

func (f *fakeRecordRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.created)), nil
}

func (f *fakeRecordRepo) CountToday() (int64, error) {
	return f.Count()
}

// weights возвращает сохранённые веса в порядке создания записей.
func (f *fakeRecordRepo) weights() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ws []float64
	for _, r := range f.created {
		ws = append(ws, r.Weight)
	}
	return ws
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func (f *fakeUserRepo) Upsert(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.TelegramID == user.TelegramID {
			f.users[i] = user
			return nil
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByTelegramID(telegramID int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.TelegramID == telegramID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll() ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeOperationRepo struct {
	mu  sync.Mutex
	ops []*models.Operation
}

func (f *fakeOperationRepo) Log(userID int64, operationType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, &models.Operation{UserID: userID, OperationType: operationType})
	return nil
}

func (f *fakeOperationRepo) CountDistinctUsersToday() (int64, error) {
	return 0, nil
}

func (f *fakeOperationRepo) CountTodayByType() (map[string]int64, error) {
	return map[string]int64{}, nil
}

// newTestBot собирает BotApp на фейках, без подключения к Telegram.
func newTestBot(records *fakeRecordRepo) (*BotApp, *fakeSender) {
	sender := &fakeSender{}
	programs := newFakeProgramRepo()
	app := &BotApp{
		api:            sender,
		programService: service.NewProgramService(programs),
		workoutService: service.NewWorkoutService(programs, records),
		reportService:  service.NewReportService(records),
		userService:    service.NewUserService(&fakeUserRepo{}, &fakeOperationRepo{}),
		sessions:       NewSessionStore(),
		mailboxes:      make(map[int64]*mailbox),
	}
	return app, sender
}
