package assets

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootstepPCM(t *testing.T) {
	pcm := FootstepPCM(1, SampleRate)
	require.NotEmpty(t, pcm)
	assert.Zero(t, len(pcm)%4, "whole stereo frames")

	frames := len(pcm) / 4
	assert.Equal(t, int(footstepDuration*SampleRate)+int(footstepGap*SampleRate), frames)

	var loud bool
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		require.Equal(t, l, r)
		if l > 1000 || l < -1000 {
			loud = true
		}
	}
	assert.True(t, loud)

	tail := pcm[len(pcm)-4:]
	assert.Equal(t, []byte{0, 0, 0, 0}, tail)
}

func TestFootstepPCMVariesBySeed(t *testing.T) {
	assert.Equal(t, FootstepPCM(3, SampleRate), FootstepPCM(3, SampleRate))
	assert.NotEqual(t, FootstepPCM(3, SampleRate), FootstepPCM(4, SampleRate))
}

func TestNewFootstepPlayersWithoutContext(t *testing.T) {
	assert.Nil(t, NewFootstepPlayers(nil, 4))
}
