package ui

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

type SoundEffect int

const (
	SoundLap SoundEffect = iota
	SoundReset
)

// 提示音参数，不依赖外部音频文件，直接合成正弦波
var soundTones = map[SoundEffect]struct {
	freq     int
	duration time.Duration
}{
	SoundLap:   {freq: 880, duration: 90 * time.Millisecond},
	SoundReset: {freq: 440, duration: 150 * time.Millisecond},
}

const sampleRate = beep.SampleRate(44100)

// 音频系统只初始化一次
var (
	audioOnce sync.Once
	audioErr  error
	volume    float64 = 1.0
)

func initAudio() error {
	audioOnce.Do(func() {
		audioErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return audioErr
}

// 设置音量
func setVolume(v float64) {
	volume = v
}

// 播放指定的音效，失败只记录日志
func playSound(effect SoundEffect, logger *zap.Logger) {
	if err := initAudio(); err != nil {
		logger.Warn("音频初始化失败", zap.Error(err))
		return
	}

	tone, ok := soundTones[effect]
	if !ok {
		return
	}

	streamer, err := generators.SinTone(sampleRate, tone.freq)
	if err != nil {
		logger.Warn("生成提示音失败", zap.Error(err))
		return
	}

	// 截取需要的时长并加上音量控制
	volumeCtrl := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(tone.duration), streamer),
		Base:     2,
		Volume:   volume,
		Silent:   false,
	}

	speaker.Play(volumeCtrl)
}
