package main

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

type soundPlayer interface {
	play(stream beep.Streamer, format beep.Format)
}

// ppSpeaker initializes the speaker on first use. If that fails every later
// play is dropped, the trainer works fine without sound.
type ppSpeaker struct {
	mu          sync.Mutex
	initialized bool
	failed      bool
	format      beep.Format
}

func (spkr *ppSpeaker) init(format beep.Format) error {
	bufSize := format.SampleRate.N(time.Second / 10)
	log.Info("Initializing speaker", "sampleRate", format.SampleRate, "bufferSize", bufSize)
	if err := speaker.Init(format.SampleRate, bufSize); err != nil {
		return err
	}
	spkr.initialized = true
	spkr.format = format
	return nil
}

func (spkr *ppSpeaker) play(stream beep.Streamer, format beep.Format) {
	spkr.mu.Lock()
	defer spkr.mu.Unlock()

	if spkr.failed {
		return
	}
	if !spkr.initialized {
		if err := spkr.init(format); err != nil {
			log.Error("speaker init failed, sound disabled", "err", err)
			spkr.failed = true
			return
		}
	} else if format.SampleRate != spkr.format.SampleRate {
		log.Debug("Resampling", "from", format.SampleRate, "to", spkr.format.SampleRate)
		stream = beep.Resample(4, format.SampleRate, spkr.format.SampleRate, stream)
	}

	speaker.Play(stream)
}

func (spkr *ppSpeaker) clear() {
	spkr.mu.Lock()
	defer spkr.mu.Unlock()
	if spkr.initialized {
		speaker.Clear()
	}
}
