package cmd

import (
	"fmt"
	"os"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/director/constraint"
	"github.com/iteam13337/gosweep/director/random"
	"github.com/iteam13337/gosweep/game"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type options struct {
	width, height, numMines uint
	mode                    game.Mode
	seed                    int64

	configPath   string
	presetName   string
	directorName string
	numGames     uint
	maxSteps     uint
	showBoards   bool

	logLevel string
	logJSON  bool
}

var opts = options{}

var directors = map[string]func() director.Director{
	"random":     func() director.Director { return &random.Director{} },
	"constraint": func() director.Director { return &constraint.Director{} },
}

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play computer-driven Minesweeper games",
	Long: `gosweep runs Minesweeper games headlessly, driven by a director,
and prints a YAML summary of the outcomes.

Play 100 expert games with the deducing director
	gosweep --preset expert -n 100

Play a custom board with the random director
	gosweep -w 16 -h 16 -m 40 -d random
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(opts.logLevel, opts.logJSON)
		if err != nil {
			return err
		}

		config, err := buildConfig(cmd, opts)
		if err != nil {
			return err
		}
		config.Logger = log

		newDirector, isValid := directors[opts.directorName]
		if !isValid {
			return errors.Errorf("unknown director %q", opts.directorName)
		}

		report, err := run(config, newDirector, opts, log)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(err, "encoding summary")
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type gameModeValue game.Mode

func newGameModeValue(val game.Mode, p *game.Mode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.Mode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseMode(value)
	if err != nil {
		return fmt.Errorf("invalid game mode")
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.Mode"
}

// buildConfig layers the preset, then the config file, then any flag given
// explicitly on the command line.
func buildConfig(cmd *cobra.Command, opts options) (game.Config, error) {
	config := game.DefaultConfig()

	if opts.presetName != "" {
		preset, isValid := game.Presets[opts.presetName]
		if !isValid {
			return config, errors.Errorf("unknown preset %q", opts.presetName)
		}
		config = preset
	}

	if opts.configPath != "" {
		file, err := os.Open(opts.configPath)
		if err != nil {
			return config, errors.Wrap(err, "opening config")
		}
		defer file.Close()

		if config, err = game.DecodeConfig(config, file); err != nil {
			return config, errors.Wrapf(err, "loading %s", opts.configPath)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Cols = int(opts.width)
	}
	if flags.Changed("height") {
		config.Rows = int(opts.height)
	}
	if flags.Changed("mines") {
		config.Mines = int(opts.numMines)
	}
	if flags.Changed("mode") || (opts.presetName == "" && opts.configPath == "") {
		config.Mode = opts.mode
	}
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}

	return config, config.Validate()
}

func newLogger(level string, json bool) (*logrus.Logger, error) {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	log.SetLevel(parsed)

	if json {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return log, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().UintVarP(&opts.width, "width", "w", 30, "Width of game board, in cells")
	rootCmd.Flags().UintVarP(&opts.height, "height", "h", 16, "Height of game board, in cells")
	rootCmd.Flags().UintVarP(&opts.numMines, "mines", "m", 99, "Number of mines to place in the game board")
	rootCmd.Flags().Var(newGameModeValue(game.Win7, &opts.mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines
classic: only the first-clicked cell is cleared of mines`)
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for mine placement and director guesses (0 = random)")

	rootCmd.Flags().StringVar(&opts.presetName, "preset", "", "Board preset: beginner, intermediate or expert")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with cols, rows, mines, mode and seed")
	rootCmd.Flags().StringVarP(&opts.directorName, "director", "d", "constraint", "Director playing the games: random or constraint")
	rootCmd.Flags().UintVarP(&opts.numGames, "games", "n", 1, "Number of games to play")
	rootCmd.Flags().UintVar(&opts.maxSteps, "max-steps", 0, "Give up a game after this many actions (0 = no limit)")
	rootCmd.Flags().BoolVar(&opts.showBoards, "show-boards", false, "Include the final board of every game in the summary")

	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")
}
