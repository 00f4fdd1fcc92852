package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// themeFile is the optional background track, looked up beside the binary.
const themeFile = "snake_theme.wav"

var musicVolume = 0.14

// AudioSystem holds the playback context for the background track.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// loopReader feeds an immutable sample buffer to the playback worker,
// restarting from the beginning each time the buffer is exhausted, forever.
// remaining is the byte count left in the current pass; Read only ever
// decreases it and copies at most that many bytes, so the playback side
// sees a monotonically draining counter between restarts.
type loopReader struct {
	data      []byte
	pos       int
	remaining int64 // atomic
}

func newLoopReader(data []byte) *loopReader {
	return &loopReader{data: data, remaining: int64(len(data))}
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("empty track")
	}
	rem := atomic.LoadInt64(&r.remaining)
	if rem <= 0 {
		r.pos = 0
		atomic.StoreInt64(&r.remaining, int64(len(r.data)))
		rem = int64(len(r.data))
	}
	n := len(p)
	if int64(n) > rem {
		n = int(rem)
	}
	copy(p[:n], r.data[r.pos:r.pos+n])
	r.pos += n
	atomic.AddInt64(&r.remaining, -int64(n))
	return n, nil
}

// Remaining returns the bytes left in the current pass of the track.
func (r *loopReader) Remaining() int64 {
	return atomic.LoadInt64(&r.remaining)
}

// StartBackgroundMusic begins the looping background track. The track is
// fully decoupled from gameplay: no sound effects, no reaction to score or
// death. A missing or undecodable asset is reported to stderr and playback
// falls back to the built-in synthesized track; gameplay is never affected.
func StartBackgroundMusic() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}

	samples, err := loadThemeWAV(themeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "music: %v (using built-in track)\n", err)
		samples = genThemeLoop()
	}

	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	player := globalAudio.ctx.NewPlayer(newLoopReader(samples))
	player.SetVolume(musicVolume)
	globalAudio.musicPlayer = player
	player.Play()
}

func loadThemeWAV(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeWAV(b)
}

// decodeWAV converts a RIFF/WAVE file holding 16-bit PCM at the context
// sample rate into the stereo float32 stream oto plays.
func decodeWAV(b []byte) ([]byte, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}

	var channels, rate, bits int
	var data []byte
	off := 12
	for off+8 <= len(b) {
		id := string(b[off : off+4])
		size := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
		body := b[off+8:]
		if size > len(body) {
			return nil, errors.New("truncated chunk")
		}
		body = body[:size]
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, errors.New("short fmt chunk")
			}
			if f := binary.LittleEndian.Uint16(body[0:2]); f != 1 {
				return nil, fmt.Errorf("unsupported wav format %d", f)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			rate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits = int(binary.LittleEndian.Uint16(body[14:16]))
		case "data":
			data = body
		}
		off += 8 + size
		if size%2 == 1 {
			off++ // chunks are word-aligned
		}
	}

	if data == nil {
		return nil, errors.New("no data chunk")
	}
	if bits != 16 {
		return nil, fmt.Errorf("unsupported bit depth %d", bits)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if rate != SampleRate {
		return nil, fmt.Errorf("unsupported sample rate %d", rate)
	}

	frames := len(data) / (2 * channels)
	out := makeBuf(frames)
	for i := 0; i < frames; i++ {
		left := float64(int16(binary.LittleEndian.Uint16(data[i*2*channels:]))) / 32768.0
		right := left
		if channels == 2 {
			right = float64(int16(binary.LittleEndian.Uint16(data[i*2*channels+2:]))) / 32768.0
		}
		putStereoF32LR(out, i, left, right)
	}
	return out, nil
}

// ---- Synthesis helpers ---------------------------------------------------

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation so voices never hard-clip.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genThemeLoop synthesizes the fallback background track: a slow FM pad
// cycling through four chords over a root bass. The buffer ends exactly on
// a chord boundary so the restart is seamless.
func genThemeLoop() []byte {
	chords := [][]float64{
		{220.0, 261.6, 329.6}, // Am
		{174.6, 220.0, 261.6}, // F
		{130.8, 164.8, 196.0}, // C
		{196.0, 246.9, 293.7}, // G
	}
	const chordLen = 2.4 // seconds per chord
	n := int(chordLen*SampleRate) * len(chords)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		ci := int(t/chordLen) % len(chords)
		chord := chords[ci]
		cp := math.Mod(t, chordLen) / chordLen
		env := adsr(cp, 0.08, 0.3, 0.75, 0.2)

		s := 0.0
		for _, freq := range chord {
			s += fm(t, freq, 1.45, 0.8*env) * 0.11
		}
		s += fm(t, chord[0]/2, 0.5, 1.0) * env * 0.22
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}
