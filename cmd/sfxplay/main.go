// SPDX-License-Identifier: EPL-2.0

// Command sfxplay is a terminal sound board for trying out effect files.
//
//	sfxplay [-env file] [-log file] sound.wav [sound.ogg ...]
//
// Number keys play the loaded files, p switches between 2D and positional
// playback, the arrow keys move the emitter, a and d turn the listener.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/audsfx"
	"github.com/rs/zerolog"
)

func main() {
	envFile := flag.String("env", "", "load settings from this .env file instead of ./.env")
	logFile := flag.String("log", "sfxplay.log", "log file; the terminal belongs to the UI")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: sfxplay [-env file] [-log file] <sound> [sound ...]")
		os.Exit(2)
	}

	if err := run(*envFile, *logFile, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "sfxplay:", err)
		os.Exit(1)
	}
}

func run(envFile, logFile string, paths []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := audsfx.LoadConfig(files...)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()
	logger := zerolog.New(f).Level(cfg.Level()).With().Timestamp().Logger()

	sys, err := audsfx.Open(cfg, audsfx.WithLogger(logger))
	if err != nil {
		return err
	}
	defer sys.Close()

	buffers, err := sys.LoadBuffers(paths...)
	if err != nil {
		logger.Warn().Err(err).Msg("some files were skipped")
	}

	var (
		names  []string
		loaded []*audsfx.Buffer
	)
	for i, b := range buffers {
		if b == nil {
			continue
		}
		names = append(names, filepath.Base(paths[i]))
		loaded = append(loaded, b)
	}
	if len(loaded) == 0 {
		return fmt.Errorf("no playable files: %w", err)
	}

	_, err = tea.NewProgram(newModel(sys, names, loaded), tea.WithAltScreen()).Run()
	return err
}
