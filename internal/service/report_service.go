package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
)

// Лимит Telegram на длину одного сообщения (с запасом).
const MaxMessageLength = 4000

type ReportService struct {
	records repository.RecordRepository
}

func NewReportService(records repository.RecordRepository) *ReportService {
	return &ReportService{records: records}
}

// Rows возвращает сырые строки отчёта за окно (для админ-панели).
func (s *ReportService) Rows(period repository.Period) ([]repository.ReportRow, error) {
	return s.records.FindByPeriod(period)
}

// Build собирает текст отчёта за окно: одна строка на группу
// (дата, программа, упражнение) со всеми весами группы.
func (s *ReportService) Build(period repository.Period, periodText string) (string, error) {
	rows, err := s.records.FindByPeriod(period)
	if err != nil {
		return "", err
	}
	return FormatReport(periodText, rows), nil
}

type reportKey struct {
	date     string
	program  string
	exercise string
}

// FormatReport группирует строки, сохраняя порядок выборки и внутри групп,
// и между ними: порядок подходов — это порядок created_at из запроса,
// пересортировки нет.
func FormatReport(periodText string, rows []repository.ReportRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("📊 Отчёт %s:\n\nНет записей.", periodText)
	}

	order := make([]reportKey, 0)
	groups := make(map[reportKey][]float64)

	for _, row := range rows {
		key := reportKey{
			date:     row.Date.Format("2006-01-02"),
			program:  row.ProgramName,
			exercise: row.Exercise,
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row.Weight)
	}

	lines := []string{fmt.Sprintf("📊 Отчёт %s:\n", periodText)}
	for _, key := range order {
		weights := groups[key]
		formatted := make([]string, len(weights))
		for i, w := range weights {
			formatted[i] = FormatWeight(w) + " кг"
		}
		lines = append(lines, fmt.Sprintf(
			"%s | %s | %s (%d подхода) | %s",
			key.date, key.program, key.exercise, len(weights), strings.Join(formatted, ", "),
		))
	}

	return strings.Join(lines, "\n")
}

// FormatWeight печатает вес без лишних нулей: 80 → "80", 82.5 → "82.5".
func FormatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// SplitMessage режет текст на куски не длиннее limit символов. Границы
// кусков не выравниваются по строкам — просто разрез по длине.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
