package main

import (
	"context"
	"io"
	"os"
	"time"

	mdpaper "github.com/mdpaper/mdpaper"
	"github.com/mdpaper/mdpaper/internal/config"
)

// Converter is the interface the CLI needs from the conversion library.
// Satisfied by *mdpaper.Converter; tests substitute fakes.
type Converter interface {
	Convert(ctx context.Context, input mdpaper.Input) (*mdpaper.Result, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and converter construction.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Config       *config.Config
	NewConverter func(opts ...mdpaper.Option) (Converter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
		NewConverter: func(opts ...mdpaper.Option) (Converter, error) {
			return mdpaper.NewConverter(opts...)
		},
	}
}
