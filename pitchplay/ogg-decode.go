package main

import (
	"io"

	"github.com/faiface/beep"
	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

// ogg/vorbis decoding that also accepts mono and multichannel files. Mono is
// copied to both sides, anything past the second channel is dropped.

const oggPrecision = 2

func decodeOgg(rc io.ReadCloser) (s beep.StreamSeekCloser, format beep.Format, err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "ogg/vorbis")
		}
	}()
	r, err := oggvorbis.NewReader(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if r.Channels() < 1 {
		return nil, beep.Format{}, errors.New("no channels")
	}
	format = beep.Format{
		SampleRate:  beep.SampleRate(r.SampleRate()),
		NumChannels: 2,
		Precision:   oggPrecision,
	}
	return &oggStream{
		closer: rc,
		r:      r,
		frame:  make([]float32, r.Channels()),
	}, format, nil
}

type oggStream struct {
	closer io.Closer
	r      *oggvorbis.Reader
	frame  []float32 // one sample per channel
	err    error
}

func (o *oggStream) readFrame() ([2]float64, error) {
	read := 0
	for read < len(o.frame) {
		n, err := o.r.Read(o.frame[read:])
		read += n
		if err != nil {
			if read == len(o.frame) && err == io.EOF {
				break
			}
			return [2]float64{}, err
		}
	}
	left := float64(o.frame[0])
	if len(o.frame) == 1 {
		return [2]float64{left, left}, nil
	}
	return [2]float64{left, float64(o.frame[1])}, nil
}

func (o *oggStream) Stream(samples [][2]float64) (n int, ok bool) {
	if o.err != nil {
		return 0, false
	}
	for i := range samples {
		frame, err := o.readFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			o.err = errors.Wrap(err, "ogg/vorbis")
			break
		}
		samples[i] = frame
		n++
	}
	return n, n > 0
}

func (o *oggStream) Err() error {
	return o.err
}

func (o *oggStream) Len() int {
	return int(o.r.Length())
}

func (o *oggStream) Position() int {
	return int(o.r.Position())
}

func (o *oggStream) Seek(p int) error {
	if err := o.r.SetPosition(int64(p)); err != nil {
		return errors.Wrap(err, "ogg/vorbis")
	}
	return nil
}

func (o *oggStream) Close() error {
	if err := o.closer.Close(); err != nil {
		return errors.Wrap(err, "ogg/vorbis")
	}
	return nil
}
