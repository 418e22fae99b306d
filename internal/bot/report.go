package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
)

type reportPeriod struct {
	period repository.Period
	text   string // подставляется в заголовок отчёта
}

// Токены меню отчётов. Совпадение с ними проверяется раньше состояния
// диалога.
var reportPeriods = map[string]reportPeriod{
	"За день":      {repository.PeriodDay, "за сегодня"},
	"За неделю":    {repository.PeriodWeek, "за неделю"},
	"За всё время": {repository.PeriodAll, "за всё время"},
}

func (b *BotApp) cmdReport(chatID int64) error {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("За день")),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("За неделю")),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("За всё время")),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = true

	b.sendWithMarkup(chatID, "Выберите период для отчёта:", keyboard)
	return nil
}

func (b *BotApp) handleReportPeriod(chatID int64, selected reportPeriod) error {
	report, err := b.reportService.Build(selected.period, selected.text)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении отчёта. Попробуйте снова.")
		return err
	}

	// Длинный отчёт уходит несколькими сообщениями.
	for _, chunk := range service.SplitMessage(report, service.MaxMessageLength) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		b.send(msg)
	}
	return nil
}
