package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"github.com/KunalatGH/SCT-WD-2/internal/config"
	"github.com/KunalatGH/SCT-WD-2/internal/storage"
)

type MainWindow struct {
	window        fyne.Window
	stopwatch     *StopwatchView
	db            *storage.Database
	configManager *config.Manager
	logger        *zap.Logger
}

func NewMainWindow(app fyne.App, configManager *config.Manager, logger *zap.Logger) (*MainWindow, error) {
	db, err := storage.NewDatabase()
	if err != nil {
		return nil, err
	}

	cfg := configManager.GetConfig()
	setVolume(cfg.Sound.Volume)

	w := &MainWindow{
		window:        app.NewWindow(cfg.App.Name),
		configManager: configManager,
		db:            db,
		logger:        logger,
		stopwatch:     NewStopwatchView(db, cfg.Sound.Enabled, logger),
	}
	w.setup()
	return w, nil
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	stats := NewStatsView(w.db, w.logger)

	tabs := container.NewAppTabs(
		container.NewTabItem("Stopwatch", w.stopwatch.container),
		container.NewTabItem("Statistics", stats.container),
	)

	w.window.SetContent(tabs)
	w.window.Resize(fyne.NewSize(400, 500))

	// 关闭窗口时取消计时回调并释放数据库
	w.window.SetOnClosed(func() {
		w.stopwatch.Close()
		if err := w.db.Close(); err != nil {
			w.logger.Warn("关闭数据库失败", zap.Error(err))
		}
	})
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
