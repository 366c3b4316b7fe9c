package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/KunalatGH/SCT-WD-2/internal/engine"
	"github.com/KunalatGH/SCT-WD-2/internal/storage"
)

type StatsView struct {
	container  *fyne.Container
	db         *storage.Database
	logger     *zap.Logger
	lapStats   *widget.Label
	refreshBtn *widget.Button
}

func NewStatsView(db *storage.Database, logger *zap.Logger) *StatsView {
	sv := &StatsView{
		db:       db,
		logger:   logger,
		lapStats: widget.NewLabel(""),
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	// 创建标题
	title := widget.NewLabelWithStyle("Session Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// 创建刷新按钮
	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), sv.updateStats)

	toolbar := container.NewHBox(
		widget.NewLabel("Lap Statistics:"),
		sv.refreshBtn,
	)

	sv.container = container.NewVBox(
		title,
		toolbar,
		sv.lapStats,
	)

	sv.updateStats()
}

// updateStats 查询并展示本次会话的计次统计
func (sv *StatsView) updateStats() {
	stats, err := sv.db.GetLapStats()
	if err != nil {
		sv.logger.Warn("查询计次统计失败", zap.Error(err))
		sv.lapStats.SetText("statistics unavailable")
		return
	}

	if stats.TotalLaps == 0 {
		sv.lapStats.SetText("No laps recorded yet")
		return
	}

	sv.lapStats.SetText(fmt.Sprintf(
		"Laps: %d\nFastest: %s\nSlowest: %s\nAverage: %s\nTotal: %s",
		stats.TotalLaps,
		engine.FormatMillis(stats.FastestMs),
		engine.FormatMillis(stats.SlowestMs),
		engine.FormatMillis(int64(stats.AverageMs)),
		engine.FormatMillis(stats.TotalElapsed),
	))
}
