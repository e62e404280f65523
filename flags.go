package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/hlduel/internal/scrollsync"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for hlduel.
type params struct {
	version bool

	Addr       string
	Style      string
	SyncWindow time.Duration
	Config     string
	Debug      bool
}

// cliParser parses the command line arguments for hlduel.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("hlduel", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		fmt.Fprint(cmd.Stderr, _usage)
	}

	var p params

	// Server:
	fset.StringVar(&p.Addr, "addr", "localhost:8573", "")
	fset.DurationVar(&p.SyncWindow, "sync-window", scrollsync.DefaultWindow, "")

	// Rendering:
	fset.StringVar(&p.Style, "style", "hlduel", "")

	// Program-level:
	fset.StringVar(&p.Config, "config", "", "")
	fset.BoolVar(&p.Debug, "debug", false, "")
	fset.BoolVar(&p.version, "version", false, "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("HLDUEL")); err != nil {
		return nil, err
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hlduel", _version)
		return nil, errHelp
	}

	if args := fset.Args(); len(args) > 0 {
		fmt.Fprintln(cmd.Stderr, "unexpected arguments:", args)
		fset.Usage()
		return nil, errInvalidArguments
	}

	if p.Config != "" {
		if err := p.applyConfigFile(fset); err != nil {
			fmt.Fprintf(cmd.Stderr, "read config %v: %v\n", p.Config, err)
			return nil, errInvalidArguments
		}
	}

	// styles.Get falls back to a default style for unknown names;
	// only the registry says whether the name is real.
	if _, ok := styles.Registry[p.Style]; !ok {
		fmt.Fprintf(cmd.Stderr, "unknown chroma style %q\n", p.Style)
		return nil, errInvalidArguments
	}

	return p, nil
}
