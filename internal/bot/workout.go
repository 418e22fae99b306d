package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/metrics"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
	"github.com/nonmagicfly/bot-ai-cursor/pkg/utils"
)

// Callback-данные инлайн-кнопок. Формат строк менять нельзя: по первому
// разбирается id программы, два других сравниваются дословно.
const (
	callbackSelectProgram    = "select_program_"
	callbackConfirmDeleteAll = "confirm_delete_all"
	callbackCancelDeleteAll  = "cancel_delete_all"
)

// Поток тренировки: выбор активной программы → цикл ввода весов по всем
// подходам всех упражнений → завершение.

func (b *BotApp) cmdStartWorkout(chatID int64) error {
	// Недоигранная тренировка или брошенное создание программы
	// сбрасываются.
	b.sessions.Clear(chatID)

	programs, err := b.programService.ListActive()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении списка программ. Попробуйте снова.")
		return err
	}

	if len(programs) == 0 {
		b.sendText(chatID,
			"❌ Нет активных программ.\n\n"+
				"Создайте программу командой /newprogram")
		return nil
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	var names []string
	for _, p := range programs {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Name, fmt.Sprintf("%s%d", callbackSelectProgram, p.ID)),
		))
		names = append(names, "• "+p.Name)
	}

	b.sendWithMarkup(chatID,
		fmt.Sprintf("🏋️ Выберите активную программу для тренировки:\n\n%s", strings.Join(names, "\n")),
		tgbotapi.NewInlineKeyboardMarkup(buttons...),
	)
	return nil
}

func (b *BotApp) handleCallback(callback *tgbotapi.CallbackQuery) {
	switch {
	case strings.HasPrefix(callback.Data, callbackSelectProgram):
		b.answerCallback(callback.ID, "")
		b.track("select_program", callback.From, func() error {
			return b.handleProgramSelection(callback)
		})
	case callback.Data == callbackConfirmDeleteAll:
		b.answerCallback(callback.ID, "")
		b.track("confirm_delete_all", callback.From, func() error {
			return b.handleConfirmDeleteAll(callback)
		})
	case callback.Data == callbackCancelDeleteAll:
		b.answerCallback(callback.ID, "Отменено")
		b.editMessage(callback, "❌ Удаление отменено.")
	default:
		b.answerCallback(callback.ID, "")
	}
}

func (b *BotApp) handleProgramSelection(callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID

	programID, err := strconv.ParseUint(strings.TrimPrefix(callback.Data, callbackSelectProgram), 10, 32)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при выборе программы. Попробуйте снова.")
		return nil
	}

	program, exercises, err := b.workoutService.StartWorkout(uint(programID))
	switch {
	case errors.Is(err, service.ErrProgramNotActive):
		b.sendText(chatID,
			"❌ Эта программа больше не активна.\n"+
				"Используйте команду /startworkout для выбора активной программы.")
		return nil
	case errors.Is(err, service.ErrProgramEmpty):
		b.sendText(chatID, "❌ В программе нет упражнений.")
		return nil
	case err != nil:
		b.sendText(chatID, "❌ Ошибка при выборе программы. Попробуйте снова.")
		return err
	}

	session := &Session{
		Step:         StepAwaitingWeight,
		ProgramID:    program.ID,
		ProgramTitle: program.Name,
		Exercises:    exercises,
		ExerciseIdx:  0,
		CurrentSet:   1,
	}
	b.sessions.Set(chatID, session)

	// Убираем клавиатуру выбора; если не вышло — просто продолжаем.
	b.removeInlineKeyboard(callback)

	b.promptExercise(chatID, session)
	return nil
}

// promptExercise объявляет текущее упражнение и запрашивает вес первого
// подхода.
func (b *BotApp) promptExercise(chatID int64, session *Session) {
	exercise := session.Current()
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"🏋️ Упражнение: %s\n"+
			"📊 Подходов: %d\n\n"+
			"Введите вес для подхода %d (в кг):",
		exercise.Name, exercise.Sets, session.CurrentSet,
	))
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	b.send(msg)
}

// handleWeight разбирает вес текущего подхода. Нечисловой ввод не двигает
// состояние — вопрос повторяется для того же подхода, сколько угодно раз.
func (b *BotApp) handleWeight(msg *tgbotapi.Message, session *Session) {
	chatID := msg.Chat.ID

	if !session.Valid() {
		b.sessions.Clear(chatID)
		b.sendText(chatID, "❌ Ошибка состояния. Начните тренировку заново командой /startworkout")
		return
	}

	exercise := session.Current()

	weight, err := service.ParseWeight(msg.Text)
	if err != nil {
		b.sendText(chatID, fmt.Sprintf(
			"❌ Неверный формат. Введите число (например: 80 или 80.5):\n\n"+
				"🏋️ Упражнение: %s\n"+
				"📊 Подход %d/%d",
			exercise.Name, session.CurrentSet, exercise.Sets,
		))
		return
	}

	if err := b.workoutService.RecordSet(session.ProgramID, exercise.ID, session.CurrentSet, weight); err != nil {
		// Состояние не трогаем: после сбоя хранилища вес этого же
		// подхода запрашивается повторно, подход не теряется.
		utils.Log.Errorf("Ошибка при сохранении записи: %v", err)
		metrics.RequestErrors.WithLabelValues("storage").Inc()
		b.sendText(chatID, "❌ Ошибка при сохранении записи. Попробуйте снова.")
		return
	}

	if msg.From != nil {
		if err := b.userService.LogOperation(msg.From.ID, "save_record"); err != nil {
			utils.Log.Error("Ошибка при логировании операции: " + err.Error())
		}
	}
	metrics.OperationsTotal.WithLabelValues("save_record").Inc()

	b.sendText(chatID, fmt.Sprintf(
		"✅ %s\nПодход %d/%d: %s кг записан",
		exercise.Name, session.CurrentSet, exercise.Sets, service.FormatWeight(weight),
	))

	if done := session.Advance(); done {
		b.sessions.Clear(chatID)
		msg := tgbotapi.NewMessage(chatID, "✅ Тренировка завершена!")
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		b.send(msg)
		return
	}
	b.sessions.Set(chatID, session)

	if session.CurrentSet == 1 {
		// Перешли к следующему упражнению
		b.promptExercise(chatID, session)
		return
	}
	b.sendText(chatID, fmt.Sprintf(
		"🏋️ %s\nВведите вес для подхода %d/%d (в кг):",
		session.Current().Name, session.CurrentSet, session.Current().Sets,
	))
}

// Удаление всех программ с подтверждением.
func (b *BotApp) cmdDeleteAll(chatID int64) error {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да, удалить все", callbackConfirmDeleteAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", callbackCancelDeleteAll),
		),
	)

	b.sendWithMarkup(chatID,
		"⚠️ ВНИМАНИЕ!\n\n"+
			"Вы собираетесь удалить ВСЕ программы и все записи тренировок.\n"+
			"Это действие нельзя отменить!\n\n"+
			"Продолжить?",
		keyboard,
	)
	return nil
}

func (b *BotApp) handleConfirmDeleteAll(callback *tgbotapi.CallbackQuery) error {
	if err := b.programService.DeleteAll(); err != nil {
		utils.Log.Errorf("Ошибка при удалении программ: %v", err)
		b.editMessage(callback, "❌ Ошибка при удалении программ. Попробуйте снова.")
		return err
	}
	b.editMessage(callback, "✅ Все программы и записи тренировок удалены.")
	return nil
}

func (b *BotApp) editMessage(callback *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(callback.Message.Chat.ID, callback.Message.MessageID, text)
	if _, err := b.api.Send(edit); err != nil {
		utils.Log.Warn("Не удалось изменить сообщение: " + err.Error())
	}
}

func (b *BotApp) removeInlineKeyboard(callback *tgbotapi.CallbackQuery) {
	edit := tgbotapi.NewEditMessageReplyMarkup(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	)
	if _, err := b.api.Send(edit); err != nil {
		utils.Log.Warn("Не удалось удалить клавиатуру: " + err.Error())
	}
}
