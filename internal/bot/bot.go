package bot

import (
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/metrics"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
	"github.com/nonmagicfly/bot-ai-cursor/pkg/utils"
)

const welcomeText = `🏋️ Добро пожаловать в бот для записи силовых упражнений!

Доступные команды:
/start - Начать работу
/newprogram - Создать новую программу тренировок
/programs - Список всех программ
/startworkout - Начать тренировку
/report - Просмотреть отчёты
/deleteall - Удалить все программы

Для создания программы:
1. Введите название программы
2. Введите упражнения в формате: упражнение\подходы

Пример:
Приседания\3
Жим лёжа\3
Тяга\3`

const helpText = `📚 Помощь по использованию бота

Основные команды:
/start - Главное меню
/help - Эта справка
/newprogram - Создать программу тренировок
/startworkout - Начать тренировку по активной программе
/report - Отчёты за день, неделю или всё время
/deleteall - Удалить все программы и записи

Как пользоваться:
1. Создайте программу: название, затем упражнения построчно
   в формате упражнение\подходы
2. Начните тренировку и вводите вес после каждого подхода
3. Смотрите отчёты по накопленным записям`

// telegramAPI — часть клиента Telegram, которой пользуются обработчики.
// *tgbotapi.BotAPI реализует его как есть.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BotApp — основная структура бота
type BotApp struct {
	API *tgbotapi.BotAPI
	api telegramAPI

	programService *service.ProgramService
	workoutService *service.WorkoutService
	reportService  *service.ReportService
	userService    *service.UserService

	sessions *SessionStore

	mu        sync.Mutex
	mailboxes map[int64]*mailbox
}

// mailbox — неограниченная очередь обновлений одного чата.
type mailbox struct {
	pending []tgbotapi.Update
}

// Конструктор бота
func NewBotApp(
	token string,
	programService *service.ProgramService,
	workoutService *service.WorkoutService,
	reportService *service.ReportService,
	userService *service.UserService,
) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		API:            botAPI,
		api:            botAPI,
		programService: programService,
		workoutService: workoutService,
		reportService:  reportService,
		userService:    userService,
		sessions:       NewSessionStore(),
		mailboxes:      make(map[int64]*mailbox),
	}, nil
}

// Запуск бота
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	utils.Log.Info("🤖 Бот запущен")

	for update := range updates {
		chatID, ok := updateChatID(update)
		if !ok {
			continue
		}
		b.dispatch(chatID, update)
	}
}

// dispatch кладёт обновление в очередь чата, лениво поднимая для него
// воркера. Очередь не ограничена, поэтому dispatch не блокируется никогда:
// зависший запрос к базе в одном диалоге копит очередь этого чата, но не
// останавливает приём обновлений для остальных. Внутри чата порядок
// прихода сохраняется строго.
func (b *BotApp) dispatch(chatID int64, update tgbotapi.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	box, exists := b.mailboxes[chatID]
	if !exists {
		box = &mailbox{}
		b.mailboxes[chatID] = box
		go b.drain(chatID, box)
	}
	box.pending = append(box.pending, update)
}

// drain обрабатывает очередь чата по одному обновлению. Когда очередь
// пустеет, воркер снимает себя с учёта и завершается: простаивающие чаты
// горутин не держат, следующий dispatch поднимет нового воркера.
func (b *BotApp) drain(chatID int64, box *mailbox) {
	for {
		b.mu.Lock()
		if len(box.pending) == 0 {
			delete(b.mailboxes, chatID)
			b.mu.Unlock()
			return
		}
		update := box.pending[0]
		box.pending = box.pending[1:]
		b.mu.Unlock()

		b.handleUpdate(update)
	}
}

func updateChatID(update tgbotapi.Update) (int64, bool) {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID, true
	}
	if update.Message != nil {
		return update.Message.Chat.ID, true
	}
	return 0, false
}

func (b *BotApp) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}
	if update.Message.IsCommand() {
		b.handleCommand(update)
		return
	}
	b.handleText(update)
}

// Команды
func (b *BotApp) handleCommand(update tgbotapi.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.track("start", msg.From, func() error {
			b.sendText(chatID, welcomeText)
			return nil
		})
	case "help":
		b.track("help", msg.From, func() error {
			b.sendText(chatID, helpText)
			return nil
		})
	case "newprogram":
		b.track("newprogram", msg.From, func() error {
			return b.cmdNewProgram(chatID)
		})
	case "programs":
		b.track("programs", msg.From, func() error {
			return b.cmdPrograms(chatID)
		})
	case "startworkout":
		b.track("startworkout", msg.From, func() error {
			return b.cmdStartWorkout(chatID)
		})
	case "report":
		b.track("report", msg.From, func() error {
			return b.cmdReport(chatID)
		})
	case "deleteall":
		b.track("deleteall", msg.From, func() error {
			return b.cmdDeleteAll(chatID)
		})
	default:
		b.sendText(chatID, "Неизвестная команда. Используйте /help")
	}
}

// Обычный текст. Порядок разбора фиксированный: сначала токены меню
// отчётов, затем активный диалог, в конце — подсказка с главным меню.
// Текст, похожий на команду, внутри диалога не перехватывается: в шаге
// ввода веса он разбирается как вес.
func (b *BotApp) handleText(update tgbotapi.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	if period, ok := reportPeriods[msg.Text]; ok {
		b.track("report_period", msg.From, func() error {
			return b.handleReportPeriod(chatID, period)
		})
		return
	}

	if session, exists := b.sessions.Get(chatID); exists {
		b.registerSender(msg.From)
		b.handleSessionInput(msg, session)
		return
	}

	b.sendText(chatID, welcomeText)
}

// Ввод внутри активного диалога.
func (b *BotApp) handleSessionInput(msg *tgbotapi.Message, session *Session) {
	switch session.Step {
	case StepAwaitingProgramName:
		b.handleProgramName(msg, session)
	case StepAwaitingProgramBody:
		b.handleProgramBody(msg, session)
	case StepAwaitingWeight:
		b.handleWeight(msg, session)
	default:
		b.sessions.Clear(msg.Chat.ID)
		b.sendText(msg.Chat.ID, welcomeText)
	}
}

// track — сквозная обёртка всех пользовательских действий: регистрирует
// отправителя, пишет операцию в журнал, обновляет счётчики и замеряет
// длительность обработчика.
func (b *BotApp) track(operationType string, from *tgbotapi.User, handler func() error) {
	b.registerSender(from)
	if from != nil {
		if err := b.userService.LogOperation(from.ID, operationType); err != nil {
			utils.Log.Error("Ошибка при логировании операции: " + err.Error())
		}
	}
	metrics.OperationsTotal.WithLabelValues(operationType).Inc()

	start := time.Now()
	if err := handler(); err != nil {
		metrics.RequestErrors.WithLabelValues(errorType(err)).Inc()
		utils.Log.Errorf("Ошибка в обработчике %s: %v", operationType, err)
	}
	metrics.RequestDuration.WithLabelValues(operationType).Observe(time.Since(start).Seconds())
}

func (b *BotApp) registerSender(from *tgbotapi.User) {
	if from == nil {
		return
	}
	if err := b.userService.Register(from.ID, from.UserName, from.FirstName, from.LastName); err != nil {
		utils.Log.Error("Ошибка при регистрации пользователя: " + err.Error())
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyProgramName), errors.Is(err, service.ErrNoExercisesParsed):
		return "validation"
	case errors.Is(err, service.ErrProgramNotActive), errors.Is(err, service.ErrProgramEmpty):
		return "state"
	default:
		return "storage"
	}
}

// Список всех программ со статусами и итогами.
func (b *BotApp) cmdPrograms(chatID int64) error {
	programs, err := b.programService.ListAll()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении списка программ. Попробуйте снова.")
		return err
	}

	if len(programs) == 0 {
		b.sendText(chatID, "📝 У вас пока нет программ. Создайте программу командой /newprogram")
		return nil
	}

	text := "📋 Список программ:\n\n"
	activeCount := 0
	for _, p := range programs {
		status := "📦 Архив"
		if p.Active {
			status = "✅ Активна"
			activeCount++
		}
		text += fmt.Sprintf("%s - %s\n", status, p.Name)
		text += fmt.Sprintf("   ID: %d | Создана: %s\n\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"))
	}

	text += fmt.Sprintf("Всего программ: %d\n", len(programs))
	text += fmt.Sprintf("Активных: %d\n", activeCount)
	text += fmt.Sprintf("В архиве: %d", len(programs)-activeCount)

	b.sendText(chatID, text)
	return nil
}

func (b *BotApp) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *BotApp) sendWithMarkup(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	b.send(msg)
}

func (b *BotApp) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		utils.Log.Error("Не удалось отправить сообщение: " + err.Error())
	}
}

func (b *BotApp) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		utils.Log.Warn("Не удалось ответить на callback: " + err.Error())
	}
}
