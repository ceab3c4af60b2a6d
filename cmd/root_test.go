package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/iteam13337/gosweep/director"
	"github.com/iteam13337/gosweep/director/random"
	"github.com/iteam13337/gosweep/game"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func TestRootCommandPrintsSummary(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--preset", "beginner",
		"--mode", "win7",
		"--seed", "5",
		"--games", "3",
		"--log-level", "error",
		"--show-boards",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var report summary
	if err := yaml.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("summary is not YAML: %v\n%s", err, out.String())
	}

	if report.Games != 3 || report.Won+report.Lost+report.Unfinished != 3 {
		t.Errorf("summary counts = %+v", report)
	}
	if report.Config.Cols != 9 || report.Config.Mines != 10 || report.Config.Mode != game.Win7 || report.Config.Seed != 5 {
		t.Errorf("summary config = %+v", report.Config)
	}
	if report.Director != "constraint" {
		t.Errorf("director = %q", report.Director)
	}
	if len(report.Boards) != 3 {
		t.Errorf("got %d boards, want 3", len(report.Boards))
	}
}

func TestRunIsReproducible(t *testing.T) {
	config := game.Presets["intermediate"]
	config.Seed = 11
	config.Logger = quietLogger()
	newDirector := func() director.Director { return &random.Director{} }
	runOpts := options{directorName: "random", numGames: 5}

	first, err := run(config, newDirector, runOpts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	second, err := run(config, newDirector, runOpts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	if first.Won != second.Won || first.Lost != second.Lost {
		t.Errorf("seeded runs differ: %+v vs %+v", first, second)
	}
	if first.WinRate != float64(first.Won)/5 {
		t.Errorf("WinRate = %v", first.WinRate)
	}
}

func TestGameModeValue(t *testing.T) {
	var mode game.Mode
	value := newGameModeValue(game.Win7, &mode)

	if value.String() != "win7" || mode != game.Win7 {
		t.Errorf("default mode = %v", value)
	}
	if err := value.Set("classic"); err != nil || mode != game.Classic {
		t.Errorf("Set(classic) = %v, mode %v", err, mode)
	}
	if err := value.Set("win95"); err == nil {
		t.Error("Set(win95) should fail")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLogger("chatty", false); err == nil {
		t.Error("expected an error for an unknown level")
	}
	log, err := newLogger("debug", true)
	if err != nil {
		t.Fatal(err)
	}
	if log.Level != logrus.DebugLevel {
		t.Errorf("Level = %v", log.Level)
	}
	if _, isJSON := log.Formatter.(*logrus.JSONFormatter); !isJSON {
		t.Errorf("Formatter = %T, want JSON", log.Formatter)
	}
}
