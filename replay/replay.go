package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/milk9111/servant/locomotion"
)

// FormatVersion is bumped whenever Recording changes incompatibly.
const FormatVersion = 1

var (
	ErrVersion = errors.New("replay: unsupported recording version")
	ErrEmpty   = errors.New("replay: recording has no frames")
)

// Recording is everything needed to reproduce a controller's motion: its
// tuning, its spawn and the input of every tick.
type Recording struct {
	Version int                    `cbor:"version"`
	Config  locomotion.Config      `cbor:"config"`
	Spawn   locomotion.Spawn       `cbor:"spawn"`
	Frames  []locomotion.TickInput `cbor:"frames"`
}

// Recorder collects tick inputs for one controller.
type Recorder struct {
	rec Recording
}

func NewRecorder(cfg locomotion.Config, spawn locomotion.Spawn) *Recorder {
	return &Recorder{rec: Recording{Version: FormatVersion, Config: cfg, Spawn: spawn}}
}

// Record appends one tick's input.
func (r *Recorder) Record(in locomotion.TickInput) {
	r.rec.Frames = append(r.rec.Frames, in)
}

// Reconfigure starts a fresh recording when tuning changes mid-session, since
// a recording carries a single config. The spawn is taken from the controller
// state at the moment of the change.
func (r *Recorder) Reconfigure(cfg locomotion.Config, st locomotion.State) {
	spawn := locomotion.Spawn{Facing: st.Facing}
	if st.CompanionPlaced {
		c := st.CompanionPosition
		spawn.Companion = &c
	}
	r.rec = Recording{Version: FormatVersion, Config: cfg, Spawn: spawn}
}

func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

func (r *Recorder) Recording() Recording {
	return r.rec
}

func (r *Recorder) Save(path string) error {
	data, err := cbor.Marshal(r.rec)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return Recording{}, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return rec, nil
}

func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Decode(data)
}

// Result is the outcome of replaying a recording.
type Result struct {
	Outputs []locomotion.TickOutput
	Final   locomotion.State
	// Elapsed is the summed delta time of all frames, in seconds.
	Elapsed float64
	Jumps   int
	// Travel is the summed horizontal displacement length.
	Travel float64
}

// Run feeds every frame through a fresh controller. Identical recordings
// always produce identical results.
func Run(rec Recording) (Result, error) {
	if len(rec.Frames) == 0 {
		return Result{}, ErrEmpty
	}
	ctrl, err := locomotion.NewController(rec.Config, rec.Spawn)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	res := Result{Outputs: make([]locomotion.TickOutput, 0, len(rec.Frames))}
	for _, in := range rec.Frames {
		out := ctrl.Tick(in)
		res.Outputs = append(res.Outputs, out)
		if out.Jumped {
			res.Jumps++
		}
		step := out.Displacement
		step[1] = 0
		res.Travel += step.Len()
		if in.DeltaTime > 0 {
			res.Elapsed += in.DeltaTime
		}
	}
	res.Final = ctrl.State()
	return res, nil
}
