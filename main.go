package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/hlduel/internal/highlight"
	"go.abhg.dev/hlduel/internal/scrollsync"
	"go.abhg.dev/hlduel/internal/webui"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("hlduel: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) error {
	hl := &highlight.Chroma{
		Style:      styles.Get(opts.Style),
		UseClasses: true,
	}

	var debugLog *log.Logger
	if opts.Debug {
		debugLog = cmd.log
	}

	srv := webui.Server{
		Log: debugLog,
		Engines: []highlight.Engine{
			highlight.Memoize(hl),
			highlight.Memoize(&highlight.Classic{}),
		},
		CSS: hl,
		Hub: &scrollsync.Hub{
			Log:    debugLog,
			Window: opts.SyncWindow,
		},
		SyncWindow: opts.SyncWindow,
	}

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return errtrace.Wrap(err)
	}

	httpSrv := http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			cmd.log.Printf("hlduel: shutdown: %v", err)
		}
	}()

	cmd.log.Printf("hlduel: serving on http://%v", ln.Addr())
	if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return errtrace.Wrap(err)
	}
	return nil
}
