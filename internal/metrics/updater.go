package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
	"github.com/nonmagicfly/bot-ai-cursor/pkg/utils"
)

var startTime = time.Now()

// Updater периодически пересчитывает gauge-метрики заново по данным
// хранилища. Счётчики и гистограммы обновляются синхронно в обработчиках,
// сюда не входят.
type Updater struct {
	stats    *service.StatsService
	interval time.Duration
}

func NewUpdater(stats *service.StatsService) *Updater {
	return &Updater{
		stats:    stats,
		interval: 30 * time.Second,
	}
}

func (u *Updater) Run(ctx context.Context) {
	u.Refresh()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.Refresh()
		}
	}
}

func (u *Updater) Refresh() {
	stats, err := u.stats.Collect()
	if err != nil {
		Health.Set(0)
		utils.Log.Error("Ошибка при обновлении метрик: " + err.Error())
		return
	}

	UsersTotal.Set(float64(stats.UsersTotal))
	UsersActiveToday.Set(float64(stats.UsersActiveToday))
	ProgramsTotal.Set(float64(stats.ProgramsTotal))
	ProgramsActive.Set(float64(stats.ProgramsActive))
	RecordsTotal.Set(float64(stats.RecordsTotal))
	RecordsToday.Set(float64(stats.RecordsToday))
	for operationType, count := range stats.OperationsToday {
		OperationsToday.WithLabelValues(operationType).Set(float64(count))
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	MemoryBytes.Set(float64(mem.Alloc))

	Uptime.Set(time.Since(startTime).Seconds())
	Health.Set(1)
}
