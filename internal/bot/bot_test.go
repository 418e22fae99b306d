package bot

import (
	"strconv"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}}
}

func mailboxCount(b *BotApp) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.mailboxes)
}

// Зависший запрос к базе в одном чате не мешает обслуживать другие чаты,
// сколько бы обновлений ни накопилось в очереди зависшего.
func TestDispatchIsolatesBlockedChat(t *testing.T) {
	records := &fakeRecordRepo{block: make(chan struct{})}
	app, sender := newTestBot(records)

	const blockedChat, otherChat = int64(100), int64(200)
	app.sessions.Set(blockedChat, &Session{
		Step:       StepAwaitingWeight,
		ProgramID:  1,
		Exercises:  []*models.Exercise{{ID: 10, Name: "Приседания", Sets: 100}},
		CurrentSet: 1,
	})

	// Первый вес повисает в хранилище, остальные копятся в очереди чата.
	// dispatch при этом не блокируется ни на одном из них.
	for i := 1; i <= 20; i++ {
		app.dispatch(blockedChat, textUpdate(blockedChat, strconv.Itoa(i)))
	}

	app.dispatch(otherChat, textUpdate(otherChat, "привет"))
	require.Eventually(t, func() bool {
		return len(sender.textsFor(otherChat)) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, welcomeText, sender.textsFor(otherChat)[0])
	assert.Empty(t, records.weights())

	// После разблокировки очередь доигрывается в порядке прихода.
	close(records.block)
	require.Eventually(t, func() bool {
		return len(records.weights()) == 20
	}, time.Second, 5*time.Millisecond)
	want := make([]float64, 0, 20)
	for i := 1; i <= 20; i++ {
		want = append(want, float64(i))
	}
	assert.Equal(t, want, records.weights())

	require.Eventually(t, func() bool {
		return mailboxCount(app) == 0
	}, time.Second, 5*time.Millisecond)
}

// Воркер чата без работы завершается, а следующее обновление поднимает
// нового: число горутин не растёт с числом встреченных чатов.
func TestDispatchReclaimsIdleWorker(t *testing.T) {
	app, sender := newTestBot(&fakeRecordRepo{})

	app.dispatch(42, textUpdate(42, "привет"))
	require.Eventually(t, func() bool {
		return mailboxCount(app) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, sender.textsFor(42), 1)

	app.dispatch(42, textUpdate(42, "привет"))
	require.Eventually(t, func() bool {
		return len(sender.textsFor(42)) == 2
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return mailboxCount(app) == 0
	}, time.Second, 5*time.Millisecond)
}
