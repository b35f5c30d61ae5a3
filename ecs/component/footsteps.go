package component

// ClipPlayer is the subset of an audio player the footstep system drives.
type ClipPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
}

// Footsteps keeps a random step clip playing while its entity walks.
type Footsteps struct {
	Players []ClipPlayer
	Volume  float64
	Current int
	Active  bool
}

var FootstepsComponent = NewComponent[Footsteps]()

// CurrentPlayer returns the selected clip, or nil when none is selected.
func (f *Footsteps) CurrentPlayer() ClipPlayer {
	if f.Current < 0 || f.Current >= len(f.Players) {
		return nil
	}
	return f.Players[f.Current]
}
