package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunalatGH/SCT-WD-2/internal/models"
)

// waitForElapsed 等待后台滴答全部消费完毕
func waitForElapsed(t *testing.T, sw *Stopwatch, want int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return sw.Elapsed() == want
	}, time.Second, time.Millisecond, "elapsed never reached %d", want)
}

func TestStartAccumulatesTicks(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Start()
	require.True(t, sw.IsRunning())

	mock.Add(250 * time.Millisecond)
	waitForElapsed(t, sw, 250)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Start()
	sw.Start()

	mock.Add(100 * time.Millisecond)
	waitForElapsed(t, sw, 100)

	// 如果出现了第二个计时源，这里会继续增长
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 100, sw.Elapsed())
}

func TestPauseFreezesElapsed(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Start()
	mock.Add(130 * time.Millisecond)
	waitForElapsed(t, sw, 130)

	sw.Pause()
	require.False(t, sw.IsRunning())

	mock.Add(100 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 130, sw.Elapsed())

	// 再次暂停不做任何事
	sw.Pause()
	assert.EqualValues(t, 130, sw.Elapsed())
}

func TestToggle(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Toggle()
	require.True(t, sw.IsRunning())

	mock.Add(50 * time.Millisecond)
	waitForElapsed(t, sw, 50)

	sw.Toggle()
	require.False(t, sw.IsRunning())

	// 暂停后继续计时，累计时间接着增长
	sw.Toggle()
	mock.Add(50 * time.Millisecond)
	waitForElapsed(t, sw, 100)
}

func TestOnTickReportsElapsed(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	var last atomic.Int64
	sw.SetOnTick(func(elapsedMs int64) {
		last.Store(elapsedMs)
	})

	sw.Start()
	mock.Add(30 * time.Millisecond)
	waitForElapsed(t, sw, 30)

	require.Eventually(t, func() bool {
		return last.Load() == 30
	}, time.Second, time.Millisecond)
}

func TestRecordLapAtZeroIsNoop(t *testing.T) {
	sw := NewStopwatch()
	defer sw.Close()

	sw.RecordLap()

	assert.Empty(t, sw.Laps())
	assert.Zero(t, sw.LapCount())
}

func TestRecordLapOrderingAndReset(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	var lapped []models.Lap
	sw.SetOnLap(func(lap models.Lap) {
		lapped = append(lapped, lap)
	})

	sw.Start()
	mock.Add(250 * time.Millisecond)
	waitForElapsed(t, sw, 250)
	sw.RecordLap()

	mock.Add(250 * time.Millisecond)
	waitForElapsed(t, sw, 500)
	sw.RecordLap()

	laps := sw.Laps()
	require.Len(t, laps, 2)

	// 显示顺序最新在前，序号按记录顺序递增
	assert.Equal(t, 2, laps[0].Seq)
	assert.EqualValues(t, 500, laps[0].ElapsedMs)
	assert.EqualValues(t, 250, laps[0].SplitMs)
	assert.Equal(t, "00:00:50", laps[0].Formatted)

	assert.Equal(t, 1, laps[1].Seq)
	assert.EqualValues(t, 250, laps[1].ElapsedMs)
	assert.EqualValues(t, 250, laps[1].SplitMs)
	assert.Equal(t, "00:00:25", laps[1].Formatted)

	// 回调按记录顺序收到计次
	require.Len(t, lapped, 2)
	assert.Equal(t, 1, lapped[0].Seq)
	assert.Equal(t, 2, lapped[1].Seq)

	sw.Reset()
	assert.False(t, sw.IsRunning())
	assert.Zero(t, sw.Elapsed())
	assert.Empty(t, sw.Laps())
}

func TestLapsReturnsCopy(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Start()
	mock.Add(10 * time.Millisecond)
	waitForElapsed(t, sw, 10)
	sw.RecordLap()

	laps := sw.Laps()
	laps[0].Seq = 99

	assert.Equal(t, 1, sw.Laps()[0].Seq)
}

func TestResetIsIdempotent(t *testing.T) {
	sw := NewStopwatch()
	defer sw.Close()

	resets := 0
	sw.SetOnReset(func() { resets++ })

	sw.Reset()
	sw.Reset()

	assert.False(t, sw.IsRunning())
	assert.Zero(t, sw.Elapsed())
	assert.Empty(t, sw.Laps())
	assert.Equal(t, 2, resets)
}

func TestResetWhileRunningStopsTicker(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)
	defer sw.Close()

	sw.Start()
	mock.Add(80 * time.Millisecond)
	waitForElapsed(t, sw, 80)

	sw.Reset()
	require.False(t, sw.IsRunning())

	mock.Add(100 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, sw.Elapsed())
}

func TestCloseCancelsPendingTicks(t *testing.T) {
	mock := clock.NewMock()
	sw := NewStopwatchWithClock(mock)

	sw.Start()
	mock.Add(50 * time.Millisecond)
	waitForElapsed(t, sw, 50)

	sw.Close()
	require.False(t, sw.IsRunning())

	// 销毁之后不再有任何状态变化
	mock.Add(100 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 50, sw.Elapsed())
}
