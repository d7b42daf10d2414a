package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestFormatter(t *testing.T) {
	pc, file, line, _ := runtime.Caller(0)
	entry := &logrus.Entry{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hello",
		Caller: &runtime.Frame{
			PC:       pc,
			File:     file,
			Line:     line,
			Function: "utils.TestFormatter",
		},
	}
	out, err := (&Formatter{}).Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	line1 := string(out)
	if !strings.HasPrefix(line1, "2026-01-02 03:04:05 [warning]") {
		t.Errorf("unexpected prefix: %s", line1)
	}
	if !strings.Contains(line1, "hello") {
		t.Errorf("message missing: %s", line1)
	}
	if !strings.HasSuffix(line1, "\n") {
		t.Error("log line should end with newline")
	}
}

func TestLoggerWritesFile(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	l := Logger(logrus.InfoLevel)
	l.Info("started")

	files, err := filepath.Glob(filepath.Join("logs", "*.log"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no log file created: %v", err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log content = %q, want to contain started", string(data))
	}
}

func TestLoggerFeedsEngine(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	riichi.SetLogger(Logger(logrus.WarnLevel))
	game := riichi.NewGame(nil, nil)
	if err := game.Start(); err != nil {
		t.Fatal(err)
	}
	if game.Phase() != riichi.PhasePlaying {
		t.Errorf("phase = %d, want playing", game.Phase())
	}
}
