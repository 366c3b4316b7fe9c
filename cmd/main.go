package main

import (
	"log"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/KunalatGH/SCT-WD-2/internal/config"
	"github.com/KunalatGH/SCT-WD-2/internal/ui"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// 初始化配置管理器
	configManager, err := config.NewManager()
	if err != nil {
		logger.Fatal("加载配置失败", zap.Error(err))
	}

	// 创建应用
	myApp := app.New()

	// 创建主窗口
	mainWindow, err := ui.NewMainWindow(myApp, configManager, logger)
	if err != nil {
		logger.Fatal("创建主窗口失败", zap.Error(err))
	}

	// 设置窗口大小
	cfg := configManager.GetConfig()
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	mainWindow.Show()
}
