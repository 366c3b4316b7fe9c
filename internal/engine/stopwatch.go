package engine

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/KunalatGH/SCT-WD-2/internal/models"
)

const (
	// TickInterval 周期回调的间隔
	TickInterval = 10 * time.Millisecond
	// tickStep 每次滴答推进的毫秒数
	tickStep = 10
)

// Stopwatch 表示一个秒表，计时、暂停、计次、归零
type Stopwatch struct {
	mu      sync.Mutex
	clk     clock.Clock
	elapsed int64        // 累计毫秒数，不会为负
	running bool         // 是否正在计时
	laps    []models.Lap // 计次列表，最新的在最前面
	quit    chan struct{}

	onTick  func(elapsedMs int64) // 每次滴答的回调函数
	onLap   func(lap models.Lap)  // 计次回调函数
	onReset func()                // 归零回调函数
}

// NewStopwatch 创建一个新的秒表
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(clock.New())
}

// NewStopwatchWithClock 使用指定时钟创建秒表，测试时可传入 mock 时钟
func NewStopwatchWithClock(clk clock.Clock) *Stopwatch {
	return &Stopwatch{clk: clk}
}

// Start 开始计时，已经在计时则不做任何事
func (s *Stopwatch) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	quit := make(chan struct{})
	s.quit = quit
	// 在持锁时创建 ticker，保证同一时间至多只有一个
	ticker := s.clk.Ticker(TickInterval)
	s.mu.Unlock()

	go s.run(ticker, quit)
}

func (s *Stopwatch) run(ticker *clock.Ticker, quit chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			s.mu.Lock()
			// quit 被替换说明本轮计时已结束，丢弃迟到的滴答
			if s.quit != quit {
				s.mu.Unlock()
				return
			}
			s.elapsed += tickStep
			elapsed := s.elapsed
			onTick := s.onTick
			s.mu.Unlock()

			if onTick != nil {
				onTick(elapsed)
			}
		}
	}
}

// Pause 暂停计时，累计时间保持不变，未在计时则不做任何事
func (s *Stopwatch) Pause() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

// Toggle 在计时与暂停之间切换，对应界面上的开始/暂停按钮
func (s *Stopwatch) Toggle() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		s.Pause()
	} else {
		s.Start()
	}
}

// Reset 归零：停止计时、清空累计时间和计次列表
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	s.stopLocked()
	s.elapsed = 0
	s.laps = nil
	onReset := s.onReset
	s.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}

// Close 销毁秒表，取消挂起的周期回调，之后不再有状态变化
func (s *Stopwatch) Close() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

// stopLocked 停止当前计时，调用方必须持有 s.mu
func (s *Stopwatch) stopLocked() {
	if s.quit != nil {
		close(s.quit)
		s.quit = nil
	}
	s.running = false
}

// RecordLap 记录一次计次，累计时间为 0 时不做任何事
func (s *Stopwatch) RecordLap() {
	s.mu.Lock()
	if s.elapsed == 0 {
		s.mu.Unlock()
		return
	}

	split := s.elapsed
	if len(s.laps) > 0 {
		split -= s.laps[0].ElapsedMs
	}
	lap := models.Lap{
		Seq:       len(s.laps) + 1,
		ElapsedMs: s.elapsed,
		SplitMs:   split,
		Formatted: FormatMillis(s.elapsed),
	}
	// 新记录插入最前面
	s.laps = append([]models.Lap{lap}, s.laps...)
	onLap := s.onLap
	s.mu.Unlock()

	if onLap != nil {
		onLap(lap)
	}
}

// Elapsed 获取累计毫秒数
func (s *Stopwatch) Elapsed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// IsRunning 返回是否正在计时
func (s *Stopwatch) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Laps 返回计次列表的副本，最新的在最前面
func (s *Stopwatch) Laps() []models.Lap {
	s.mu.Lock()
	defer s.mu.Unlock()
	laps := make([]models.Lap, len(s.laps))
	copy(laps, s.laps)
	return laps
}

// LapCount 返回计次数量
func (s *Stopwatch) LapCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.laps)
}

// SetOnTick 设置滴答回调函数
func (s *Stopwatch) SetOnTick(callback func(elapsedMs int64)) {
	s.mu.Lock()
	s.onTick = callback
	s.mu.Unlock()
}

// SetOnLap 设置计次回调函数
func (s *Stopwatch) SetOnLap(callback func(lap models.Lap)) {
	s.mu.Lock()
	s.onLap = callback
	s.mu.Unlock()
}

// SetOnReset 设置归零回调函数
func (s *Stopwatch) SetOnReset(callback func()) {
	s.mu.Lock()
	s.onReset = callback
	s.mu.Unlock()
}
