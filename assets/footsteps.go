package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	footstepDuration = 0.18
	// gap of silence after the thud so a looping clip reads as separate steps
	footstepGap = 0.22
)

// FootstepPCM synthesizes one footstep as 16-bit little-endian stereo PCM:
// a low thump under a short burst of low-passed noise. Each seed gives a
// slightly different step.
func FootstepPCM(seed int64, sampleRate int) []byte {
	rng := rand.New(rand.NewSource(seed))
	pitch := 70 + rng.Float64()*40
	grit := 0.25 + rng.Float64()*0.2

	steps := int(footstepDuration * float64(sampleRate))
	total := steps + int(footstepGap*float64(sampleRate))
	out := make([]byte, total*4)

	var noise float64
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t * 28)
		noise += (rng.Float64()*2 - 1 - noise) * 0.3
		s := (math.Sin(2*math.Pi*pitch*t)*(1-grit) + noise*grit) * env
		v := int16(math.Max(-1, math.Min(1, s)) * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// NewFootstepPlayers builds count distinct footstep players on ctx.
func NewFootstepPlayers(ctx *audio.Context, count int) []*audio.Player {
	if ctx == nil || count <= 0 {
		return nil
	}
	players := make([]*audio.Player, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, ctx.NewPlayerFromBytes(FootstepPCM(int64(i+1), ctx.SampleRate())))
	}
	return players
}
