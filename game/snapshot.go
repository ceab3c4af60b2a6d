package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a printable record of a board, used to report finished
// games. It is not read back into a Board.
type BoardSnapshot struct {
	Seed    int64  `yaml:"seed"`
	Mode    Mode   `yaml:"mode"`
	Phase   string `yaml:"phase"`
	Elapsed string `yaml:"elapsed"`
	Board   string `yaml:"board"`
}

func (board *Board) Snapshot() BoardSnapshot {
	return BoardSnapshot{
		Seed:    board.config.Seed,
		Mode:    board.config.Mode,
		Phase:   board.phase.String(),
		Elapsed: board.Elapsed().String(),
		Board:   board.String(),
	}
}

func (snapshot BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing snapshot")
	}
	return string(out), nil
}

// ParseLayout reads a mine map, one row per line, where '*' marks a mine and
// '.' a safe cell. Surrounding blank lines and indentation are ignored.
func ParseLayout(text string) (cols, rows int, layout FixedLayout, err error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	for y, line := range lines {
		line = strings.TrimSpace(line)
		if y == 0 {
			cols = len(line)
		} else if len(line) != cols {
			return 0, 0, nil, errors.Wrapf(ErrConfiguration, "row %d has %d cells, want %d", y, len(line), cols)
		}

		for x, c := range line {
			switch c {
			case '*':
				layout = append(layout, Position{x, y})
			case '.':
			default:
				return 0, 0, nil, errors.Wrapf(ErrConfiguration, "unexpected %q at %v", c, Position{x, y})
			}
		}
	}

	if cols == 0 {
		return 0, 0, nil, errors.Wrap(ErrConfiguration, "empty layout")
	}
	return cols, len(lines), layout, nil
}
