package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/servant/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir()
	SetDir(dir)
	t.Cleanup(func() { SetDir(prev) })
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	useDir(t, t.TempDir())

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.NoError(t, player.Locomotion.Validate())
	assert.Equal(t, 5.0, player.Locomotion.MoveSpeed)
	assert.Equal(t, 10.0, player.Locomotion.SprintSpeed)
	assert.Equal(t, "animation.tengo", player.Animation.Script)

	camera, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Positive(t, camera.Distance)

	companion, err := LoadCompanionSpec()
	require.NoError(t, err)
	assert.Equal(t, "gold", companion.Color)

	world, err := LoadWorldSpec()
	require.NoError(t, err)
	assert.NotEmpty(t, world.Walls)
	assert.NotEmpty(t, world.Platforms)

	script, err := LoadScript("animation.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(script), "clip")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, PlayerFile), []byte("locomotion:\n  move_speed: 3\n"), 0o644))

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 3.0, player.Locomotion.MoveSpeed)
	// untouched fields keep their defaults
	assert.Equal(t, locomotion.DefaultConfig().SprintSpeed, player.Locomotion.SprintSpeed)

	_, ok := ModTime("prefabs/" + PlayerFile)
	assert.True(t, ok)
	_, ok = ModTime(CameraFile)
	assert.False(t, ok)
}

func TestInvalidSpecs(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	write(PlayerFile, "locomotion:\n  gravity: 0\n")
	_, err := LoadPlayerSpec()
	require.ErrorIs(t, err, locomotion.ErrInvalidConfig)

	write(PlayerFile, "body:\n  radius: 0\n")
	_, err = LoadPlayerSpec()
	require.ErrorIs(t, err, ErrInvalidSpec)

	write(CameraFile, "min_pitch: 10\nmax_pitch: 5\n")
	_, err = LoadCameraSpec()
	require.ErrorIs(t, err, ErrInvalidSpec)

	write(WorldFile, "platforms:\n  - { min: { x: 1, z: 1 }, max: { x: 1, z: 4 }, height: 1 }\n")
	_, err = LoadWorldSpec()
	require.ErrorIs(t, err, ErrInvalidSpec)

	write(CompanionFile, "radius: [")
	_, err = LoadCompanionSpec()
	require.Error(t, err)
}

func TestSpawnFacing(t *testing.T) {
	facing := SpawnSpec{Heading: 90}.Facing()
	forward := facing.Rotate(locomotion.Forward)
	assert.InDelta(t, 1, forward.X(), 1e-9)
	assert.InDelta(t, 0, forward.Z(), 1e-9)
}

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "scripts/animation.tengo", cleanScriptPath("animation.tengo"))
	assert.Equal(t, "scripts/animation.tengo", cleanScriptPath("prefabs/scripts/animation.tengo"))
}

func TestClassify(t *testing.T) {
	c, ok := classify("/tmp/x/player.yaml")
	require.True(t, ok)
	assert.Equal(t, Change{Name: "player.yaml"}, c)

	c, ok = classify("/tmp/x/scripts/animation.tengo")
	require.True(t, ok)
	assert.Equal(t, Change{Name: "scripts/animation.tengo", Script: true}, c)

	_, ok = classify("/tmp/x/notes.txt")
	assert.False(t, ok)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, CameraFile), []byte("distance: 4\n"), 0o644))

	var got []Change
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, CameraFile, got[0].Name)
}
