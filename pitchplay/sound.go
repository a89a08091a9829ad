package main

import (
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

const (
	correctToneDuration = 300 * time.Millisecond
	wrongBuzzDuration   = 250 * time.Millisecond
	wrongBuzzFrequency  = 110.0
	fadeOutFraction     = 0.15
)

var feedbackFormat = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

type feedbackSounds struct {
	format    beep.Format
	wrongNote *beep.Buffer
}

type decoderFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// loadFeedbackSounds synthesizes the wrong answer buzz, or decodes
// wrongSoundPath when it is set
func loadFeedbackSounds(wrongSoundPath string) (feedbackSounds, error) {
	fs := feedbackSounds{format: feedbackFormat}

	if wrongSoundPath == "" {
		fs.wrongNote = bufferStreamer(buzz(fs.format.SampleRate, wrongBuzzFrequency, wrongBuzzDuration), fs.format)
		return fs, nil
	}

	stream, format, err := openAudioFile(wrongSoundPath)
	if err != nil {
		return feedbackSounds{}, errors.Wrapf(err, "wrong answer sound %s", wrongSoundPath)
	}
	defer stream.Close()

	var resampled beep.Streamer = stream
	if format.SampleRate != fs.format.SampleRate {
		resampled = beep.Resample(4, format.SampleRate, fs.format.SampleRate, stream)
	}
	fs.wrongNote = bufferStreamer(resampled, fs.format)
	return fs, nil
}

// correctFor plays the target note itself
func (fs feedbackSounds) correctFor(n note) beep.Streamer {
	tone := sineTone(fs.format.SampleRate, noteFrequency(n.pitch()), correctToneDuration)
	return &effects.Volume{Streamer: tone, Base: 2, Volume: -1}
}

func (fs feedbackSounds) wrong() beep.Streamer {
	return fs.wrongNote.Streamer(0, fs.wrongNote.Len())
}

func getAudioDecoderForFile(filePath string) decoderFunc {
	lower := strings.ToLower(filePath)
	if strings.HasSuffix(lower, ".ogg") {
		return decodeOgg
	} else if strings.HasSuffix(lower, ".wav") {
		return wavDecoder
	}
	return nil
}

func wavDecoder(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(rc)
}

func openAudioFile(filePath string) (beep.StreamSeekCloser, beep.Format, error) {
	decoder := getAudioDecoderForFile(filePath)
	if decoder == nil {
		return nil, beep.Format{}, errors.Errorf("unsupported audio file %s", filePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, beep.Format{}, err
	}
	// the decoder owns the file from here on
	return decoder(file)
}

func bufferStreamer(streamer beep.Streamer, format beep.Format) *beep.Buffer {
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer
}

// noteFrequency is equal temperament with A4 = 440 Hz
func noteFrequency(pitch uint8) float64 {
	return 440 * math.Pow(2, (float64(pitch)-69)/12)
}

func sineTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return waveform(sr, d, func(pos int) float64 {
		return math.Sin(2 * math.Pi * freq * float64(pos) / float64(sr))
	})
}

func buzz(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return waveform(sr, d, func(pos int) float64 {
		if math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) >= 0 {
			return 0.3
		}
		return -0.3
	})
}

// waveform streams d worth of samples from wave, fading out at the end so
// the sound doesn't click
func waveform(sr beep.SampleRate, d time.Duration, wave func(pos int) float64) beep.Streamer {
	total := sr.N(d)
	fadeStart := total - int(float64(total)*fadeOutFraction)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			v := wave(pos)
			if pos >= fadeStart {
				v *= float64(total-pos) / float64(total-fadeStart)
			}
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
