package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики пользователей
var (
	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_users_total",
		Help: "Общее количество зарегистрированных пользователей",
	})
	UsersActiveToday = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_users_active_today",
		Help: "Количество активных пользователей за сегодня",
	})
)

// Метрики операций
var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_operations_total",
		Help: "Общее количество операций",
	}, []string{"operation_type"})
	OperationsToday = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bot_operations_today",
		Help: "Количество операций за сегодня",
	}, []string{"operation_type"})
)

// Метрики базы данных
var (
	ProgramsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_programs_total",
		Help: "Общее количество программ",
	})
	ProgramsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_programs_active",
		Help: "Количество активных программ",
	})
	RecordsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_records_total",
		Help: "Общее количество записей тренировок",
	})
	RecordsToday = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_records_today",
		Help: "Количество записей за сегодня",
	})
)

// Метрики производительности
var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "bot_request_duration_seconds",
		Help: "Длительность обработки запросов",
	}, []string{"handler"})
	RequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_request_errors_total",
		Help: "Количество ошибок при обработке запросов",
	}, []string{"error_type"})
)

// Метрики системы
var (
	Health = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_health",
		Help: "Состояние бота (1 = работает, 0 = не работает)",
	})
	Uptime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_uptime_seconds",
		Help: "Время работы бота в секундах",
	})
	MemoryBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_system_memory_bytes",
		Help: "Использование памяти в байтах",
	})
)
