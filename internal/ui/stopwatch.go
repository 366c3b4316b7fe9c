package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/KunalatGH/SCT-WD-2/internal/engine"
	"github.com/KunalatGH/SCT-WD-2/internal/models"
	"github.com/KunalatGH/SCT-WD-2/internal/storage"
)

// 定义颜色常量
var (
	backgroundColor = color.NRGBA{R: 245, G: 245, B: 250, A: 255} // 浅灰背景
	timeColor       = color.NRGBA{R: 25, G: 25, B: 25, A: 255}    // 时间文本
	lapSeqColor     = color.NRGBA{R: 80, G: 80, B: 80, A: 255}    // 计次序号
	lapTimeColor    = color.NRGBA{R: 40, G: 40, B: 40, A: 255}    // 计次时间
)

// StopwatchView 表示秒表界面
type StopwatchView struct {
	sw     *engine.Stopwatch
	db     *storage.Database
	logger *zap.Logger

	soundEnabled bool

	// UI 组件
	container    *fyne.Container
	timeLabel    *canvas.Text
	toggleButton *widget.Button
	lapButton    *widget.Button
	resetButton  *widget.Button
	lapList      *fyne.Container
}

// NewStopwatchView 创建秒表界面
func NewStopwatchView(db *storage.Database, soundEnabled bool, logger *zap.Logger) *StopwatchView {
	v := &StopwatchView{
		sw:           engine.NewStopwatch(),
		db:           db,
		logger:       logger,
		soundEnabled: soundEnabled,
	}

	// 创建背景
	background := canvas.NewRectangle(backgroundColor)
	background.CornerRadius = 20

	// 初始化时间显示
	v.timeLabel = canvas.NewText(engine.FormatMillis(0), timeColor)
	v.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.timeLabel.TextSize = 48
	v.timeLabel.Alignment = fyne.TextAlignCenter

	// 开始/暂停按钮
	v.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), v.onToggle)
	v.toggleButton.Importance = widget.HighImportance

	// 计次按钮，累计时间为 0 时不可用
	v.lapButton = widget.NewButtonWithIcon("Lap", theme.ContentAddIcon(), v.sw.RecordLap)

	// 归零按钮，没有可清除内容时不可用
	v.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), v.sw.Reset)
	v.resetButton.Importance = widget.MediumImportance

	// 计次列表，最新的在最上面
	v.lapList = container.NewVBox()

	controls := container.NewHBox(
		layout.NewSpacer(),
		v.toggleButton,
		v.lapButton,
		v.resetButton,
		layout.NewSpacer(),
	)

	header := container.NewVBox(
		container.NewPadded(v.timeLabel),
		controls,
		widget.NewSeparator(),
	)

	// 计次列表占据剩余空间并可滚动
	content := container.NewBorder(
		header, nil, nil, nil,
		container.NewVScroll(v.lapList),
	)

	v.container = container.NewMax(
		background,
		container.NewPadded(content),
	)

	// 设置回调
	v.sw.SetOnTick(func(elapsedMs int64) {
		v.timeLabel.Text = engine.FormatMillis(elapsedMs)
		v.timeLabel.Refresh()
		v.updateButtons()
	})
	v.sw.SetOnLap(v.onLap)
	v.sw.SetOnReset(v.onReset)

	v.updateButtons()
	return v
}

// onToggle 切换计时状态并更新按钮外观
func (v *StopwatchView) onToggle() {
	v.sw.Toggle()
	if v.sw.IsRunning() {
		v.toggleButton.SetIcon(theme.MediaPauseIcon())
		v.toggleButton.SetText("Pause")
	} else {
		v.toggleButton.SetIcon(theme.MediaPlayIcon())
		v.toggleButton.SetText("Start")
	}
	v.updateButtons()
}

// onLap 处理一条新的计次记录
func (v *StopwatchView) onLap(lap models.Lap) {
	if err := v.db.SaveLap(lap); err != nil {
		v.logger.Warn("保存计次记录失败", zap.Int("seq", lap.Seq), zap.Error(err))
	}

	if v.soundEnabled {
		go playSound(SoundLap, v.logger)
	}

	v.rebuildLapList()
	v.updateButtons()
}

// onReset 归零后恢复初始界面
func (v *StopwatchView) onReset() {
	if err := v.db.ClearLaps(); err != nil {
		v.logger.Warn("清空计次记录失败", zap.Error(err))
	}

	if v.soundEnabled {
		go playSound(SoundReset, v.logger)
	}

	v.timeLabel.Text = engine.FormatMillis(0)
	v.timeLabel.Refresh()
	v.toggleButton.SetIcon(theme.MediaPlayIcon())
	v.toggleButton.SetText("Start")
	v.rebuildLapList()
	v.updateButtons()
}

// updateButtons 根据当前状态启用或禁用按钮
// 每次滴答都会调用，状态没变时不触发重绘
func (v *StopwatchView) updateButtons() {
	elapsed := v.sw.Elapsed()

	if disable := elapsed == 0; disable != v.lapButton.Disabled() {
		if disable {
			v.lapButton.Disable()
		} else {
			v.lapButton.Enable()
		}
	}

	if disable := elapsed == 0 && v.sw.LapCount() == 0; disable != v.resetButton.Disabled() {
		if disable {
			v.resetButton.Disable()
		} else {
			v.resetButton.Enable()
		}
	}
}

// rebuildLapList 重建计次列表
func (v *StopwatchView) rebuildLapList() {
	v.lapList.Objects = nil

	for _, lap := range v.sw.Laps() {
		seq := canvas.NewText(fmt.Sprintf("#%d", lap.Seq), lapSeqColor)
		seq.TextSize = 16

		t := canvas.NewText(lap.Formatted, lapTimeColor)
		t.TextStyle = fyne.TextStyle{Monospace: true}
		t.TextSize = 16

		row := container.NewHBox(seq, layout.NewSpacer(), t)
		v.lapList.Add(container.NewPadded(row))
	}

	v.lapList.Refresh()
}

// Stopwatch 返回底层秒表，供其他界面查询状态
func (v *StopwatchView) Stopwatch() *engine.Stopwatch {
	return v.sw
}

// Close 销毁界面时取消挂起的计时回调
func (v *StopwatchView) Close() {
	v.sw.Close()
}
