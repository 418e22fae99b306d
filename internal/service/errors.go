package service

import "errors"

// Ошибки ввода и состояния. Обработчики переспрашивают пользователя при
// ошибках ввода и сбрасывают диалог при ошибках состояния; всё остальное
// считается ошибкой хранилища, состояние при ней не трогается, чтобы был
// возможен повтор.
var (
	ErrEmptyProgramName  = errors.New("название программы не может быть пустым")
	ErrNoExercisesParsed = errors.New("не удалось распознать ни одного упражнения")
	ErrProgramNotActive  = errors.New("программа больше не активна")
	ErrProgramEmpty      = errors.New("в программе нет упражнений")
)
