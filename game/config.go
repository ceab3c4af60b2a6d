package game

import (
	"fmt"
	"io"
	"time"

	"github.com/iteam13337/gosweep/util/collections"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Mode controls which cells are kept free of mines on the first reveal.
type Mode int

const (
	// Classic keeps only the first-clicked cell free of mines
	Classic Mode = iota
	// Win7 also clears every cell surrounding the first click, so the first
	// reveal always opens an area
	Win7
)

var Modes = map[string]Mode{
	"classic": Classic,
	"win7":    Win7,
}

func ParseMode(name string) (Mode, error) {
	if mode, isValid := Modes[name]; isValid {
		return mode, nil
	}
	return Classic, errors.Wrapf(ErrConfiguration, "unknown game mode %q", name)
}

func (mode Mode) String() string {
	for name, m := range Modes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

func (mode Mode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

func (mode *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// reserved returns the cells that must stay free of mines when pos is the
// first cell revealed.
func (mode Mode) reserved(grid *Grid, pos Position) collections.Set[Position] {
	reserved := collections.NewSet(pos)
	if mode == Win7 {
		for _, neighbor := range grid.Neighbors(pos) {
			reserved.Add(neighbor)
		}
	}
	return reserved
}

// maxReserved is the largest reserved set the mode can produce on a grid.
func (mode Mode) maxReserved(cols, rows int) int {
	if mode == Win7 {
		return min(cols, 3) * min(rows, 3)
	}
	return 1
}

type Config struct {
	Cols  int   `yaml:"cols"`
	Rows  int   `yaml:"rows"`
	Mines int   `yaml:"mines"`
	Mode  Mode  `yaml:"mode"`
	Seed  int64 `yaml:"seed"` // 0 seeds from the wall clock

	// Layout places mines on the first reveal. Defaults to a RandomLayout
	// seeded with Seed.
	Layout Layout `yaml:"-"`
	// Clock is sampled when the timer starts, stops or is reported.
	// Defaults to time.Now.
	Clock func() time.Time `yaml:"-"`
	// Logger defaults to the logrus standard logger
	Logger logrus.FieldLogger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Cols:  30,
		Rows:  16,
		Mines: 99,
		Mode:  Classic,
	}
}

var Presets = map[string]Config{
	"beginner":     {Cols: 9, Rows: 9, Mines: 10, Mode: Classic},
	"intermediate": {Cols: 16, Rows: 16, Mines: 40, Mode: Classic},
	"expert":       {Cols: 30, Rows: 16, Mines: 99, Mode: Classic},
}

// Validate checks there is room for the mines plus a safe first reveal.
func (config Config) Validate() error {
	if config.Cols <= 0 || config.Rows <= 0 {
		return errors.Wrapf(ErrConfiguration, "grid dimensions %dx%d must be positive", config.Cols, config.Rows)
	}
	if config.Mines <= 0 {
		return errors.Wrapf(ErrConfiguration, "mine count %d must be positive", config.Mines)
	}
	if config.Mode != Classic && config.Mode != Win7 {
		return errors.Wrapf(ErrConfiguration, "unknown game mode %d", int(config.Mode))
	}

	free := config.Cols*config.Rows - config.Mode.maxReserved(config.Cols, config.Rows)
	if config.Mines >= free {
		return errors.Wrapf(ErrConfiguration,
			"%d mines do not fit a %dx%d grid in %s mode", config.Mines, config.Cols, config.Rows, config.Mode)
	}
	return nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates
// the result.
func LoadConfig(in io.Reader) (Config, error) {
	return DecodeConfig(DefaultConfig(), in)
}

// DecodeConfig decodes a YAML document on top of base. Keys missing from the
// document keep their value from base.
func DecodeConfig(base Config, in io.Reader) (Config, error) {
	config := base

	raw, err := io.ReadAll(in)
	if err != nil {
		return base, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(raw, &config); err != nil {
		return base, errors.Wrap(err, "decoding config")
	}
	if err := config.Validate(); err != nil {
		return base, err
	}
	return config, nil
}
