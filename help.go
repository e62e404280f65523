package main

const _usage = `USAGE: hlduel [OPTIONS]

Serves a web page comparing the output of two syntax highlighting
libraries side by side for a fixed set of sample programs.

OPTIONS

  -addr host:port
	address to serve on.
	Defaults to localhost:8573.
  -style NAME
	Chroma style for the left pane.
	Defaults to the built-in hlduel style.
  -sync-window DURATION
	how long one pane holds the scroll lead before the
	other pane may take over. Defaults to 150ms.
  -config FILE
	TOML file with the same settings as the flags above.
	Flags and HLDUEL_* environment variables take precedence.
  -debug
	print request-level diagnostics.
  -version
	report the tool version.
  -h, -help
	prints this message.
`
