package bot

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workoutSession(sets ...int) *Session {
	exercises := make([]*models.Exercise, len(sets))
	for i, n := range sets {
		exercises[i] = &models.Exercise{
			ID:       uint(i + 1),
			Name:     fmt.Sprintf("Упражнение %d", i),
			Sets:     n,
			Position: i,
		}
	}
	return &Session{
		Step:        StepAwaitingWeight,
		ProgramID:   1,
		Exercises:   exercises,
		ExerciseIdx: 0,
		CurrentSet:  1,
	}
}

type visit struct {
	exerciseIdx int
	setNumber   int
}

func TestSessionAdvanceTraversal(t *testing.T) {
	// Обход строго декартов: упражнение 0 подходы 1..n0, упражнение 1
	// подходы 1..n1 и так далее, без пропусков и повторов.
	session := workoutSession(3, 3, 3)

	var visits []visit
	for {
		visits = append(visits, visit{session.ExerciseIdx, session.CurrentSet})
		if session.Advance() {
			break
		}
	}

	require.Len(t, visits, 9)
	want := []visit{
		{0, 1}, {0, 2}, {0, 3},
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}
	assert.Equal(t, want, visits)
}

func TestSessionAdvanceUnevenSets(t *testing.T) {
	session := workoutSession(1, 4, 2)

	var visits []visit
	for {
		visits = append(visits, visit{session.ExerciseIdx, session.CurrentSet})
		if session.Advance() {
			break
		}
	}

	want := []visit{
		{0, 1},
		{1, 1}, {1, 2}, {1, 3}, {1, 4},
		{2, 1}, {2, 2},
	}
	assert.Equal(t, want, visits)
}

func TestSessionAdvanceSingle(t *testing.T) {
	session := workoutSession(1)
	assert.True(t, session.Advance())
}

func TestSessionValid(t *testing.T) {
	assert.True(t, workoutSession(3).Valid())

	assert.False(t, (&Session{Step: StepAwaitingWeight}).Valid())

	broken := workoutSession(3)
	broken.ExerciseIdx = 5
	assert.False(t, broken.Valid())

	broken = workoutSession(3)
	broken.CurrentSet = 0
	assert.False(t, broken.Valid())
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	_, exists := store.Get(1)
	assert.False(t, exists)

	store.Set(1, &Session{Step: StepAwaitingProgramName})
	session, exists := store.Get(1)
	require.True(t, exists)
	assert.Equal(t, StepAwaitingProgramName, session.Step)

	store.Clear(1)
	_, exists = store.Get(1)
	assert.False(t, exists)
}

func TestSessionStoreIsolation(t *testing.T) {
	// Состояния разных чатов не пересекаются.
	store := NewSessionStore()
	store.Set(1, &Session{Step: StepAwaitingProgramName, ProgramName: "первый"})
	store.Set(2, &Session{Step: StepAwaitingWeight})

	first, _ := store.Get(1)
	second, _ := store.Get(2)
	assert.Equal(t, "первый", first.ProgramName)
	assert.Equal(t, StepAwaitingWeight, second.Step)

	store.Clear(1)
	_, exists := store.Get(2)
	assert.True(t, exists)
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			store.Set(chatID, &Session{Step: StepAwaitingWeight, ProgramID: uint(chatID)})
			session, exists := store.Get(chatID)
			assert.True(t, exists)
			assert.Equal(t, uint(chatID), session.ProgramID)
			store.Clear(chatID)
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		_, exists := store.Get(int64(i))
		assert.False(t, exists)
	}
}
