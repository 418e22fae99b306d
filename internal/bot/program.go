package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
	"github.com/nonmagicfly/bot-ai-cursor/pkg/utils"
)

// Поток создания программы: название → текст упражнений → запись в базу.

func (b *BotApp) cmdNewProgram(chatID int64) error {
	b.sessions.Set(chatID, &Session{Step: StepAwaitingProgramName})
	b.sendText(chatID, "📝 Введите название программы:")
	return nil
}

// Название принимается любым непустым текстом, без ограничений.
func (b *BotApp) handleProgramName(msg *tgbotapi.Message, session *Session) {
	chatID := msg.Chat.ID

	name := strings.TrimSpace(msg.Text)
	if name == "" {
		b.sendText(chatID, "❌ Название программы не может быть пустым. Попробуйте снова.")
		return
	}

	session.ProgramName = name
	session.Step = StepAwaitingProgramBody
	b.sessions.Set(chatID, session)

	b.sendText(chatID, fmt.Sprintf(
		"📝 Название программы: %s\n\n"+
			"Теперь введите упражнения в формате:\n"+
			"упражнение\\подходы\n\n"+
			"Пример:\n"+
			"Приседания\\3\n"+
			"Жим лёжа\\3\n"+
			"Тяга\\3",
		name,
	))
}

func (b *BotApp) handleProgramBody(msg *tgbotapi.Message, session *Session) {
	chatID := msg.Chat.ID

	// Название могло потеряться только при рассинхроне состояния —
	// диалог сбрасывается, пользователь начинает заново.
	if session.ProgramName == "" {
		b.sessions.Clear(chatID)
		b.sendText(chatID, "❌ Ошибка: название программы не найдено. Начните заново командой /newprogram")
		return
	}

	program, count, err := b.programService.CreateProgram(session.ProgramName, msg.Text)
	switch {
	case errors.Is(err, service.ErrNoExercisesParsed):
		// Ни одной разобранной строки — программа не создана.
		b.sessions.Clear(chatID)
		b.sendText(chatID,
			"❌ Не удалось распарсить упражнения. Проверьте формат:\n"+
				"упражнение\\подходы")
		return
	case err != nil:
		// Ошибка хранилища: состояние остаётся, текст можно прислать
		// ещё раз.
		utils.Log.Errorf("Ошибка при создании программы: %v", err)
		b.sendText(chatID, "❌ Ошибка при создании программы. Попробуйте снова.")
		return
	}

	b.sessions.Clear(chatID)
	b.sendText(chatID, fmt.Sprintf(
		"✅ Программа '%s' создана!\nДобавлено упражнений: %d",
		program.Name, count,
	))
}
