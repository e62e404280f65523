package main

import (
	"flag"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"
	"go.abhg.dev/hlduel/internal/errdefer"
)

// fileConfig mirrors the flags that may be set from a TOML file.
// Flags and environment variables take precedence over the file.
type fileConfig struct {
	Addr       string       `toml:"addr"`
	Style      string       `toml:"style"`
	SyncWindow tomlDuration `toml:"sync_window"`
	Debug      bool         `toml:"debug"`
}

type tomlDuration time.Duration

var _ toml.Unmarshaler = (*tomlDuration)(nil)

func (d *tomlDuration) UnmarshalTOML(v any) error {
	s, ok := v.(string)
	if !ok {
		return errtrace.Errorf("duration must be a string, got %T", v)
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*d = tomlDuration(dur)
	return nil
}

// applyConfigFile fills in values from p.Config
// for flags that were not set on the command line.
func (p *params) applyConfigFile(fset *flag.FlagSet) (err error) {
	f, err := os.Open(p.Config)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	var fc fileConfig
	if _, err := toml.NewDecoder(f).Decode(&fc); err != nil {
		return errtrace.Wrap(err)
	}

	set := make(map[string]struct{})
	fset.Visit(func(f *flag.Flag) {
		set[f.Name] = struct{}{}
	})
	unset := func(name string) bool {
		_, ok := set[name]
		return !ok
	}

	if unset("addr") && fc.Addr != "" {
		p.Addr = fc.Addr
	}
	if unset("style") && fc.Style != "" {
		p.Style = fc.Style
	}
	if unset("sync-window") && fc.SyncWindow != 0 {
		p.SyncWindow = time.Duration(fc.SyncWindow)
	}
	if unset("debug") && fc.Debug {
		p.Debug = true
	}
	return nil
}
