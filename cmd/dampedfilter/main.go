package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dampedfilter"
	"dampedfilter/internal/config"
	"dampedfilter/internal/params"
	"dampedfilter/internal/report"
	"dampedfilter/internal/server"
)

const usage = `usage: dampedfilter [flags] <command>

commands:
  calc [parameters.txt]   compute the filter and save results
  defaults [path]         write the default parameter file
  serve                   start the HTTP server

flags:
`

type App struct {
	cfg    *config.Config
	log    *logrus.Logger
	stdout io.Writer
}

// newApp parses flags over the environment configuration. The remaining
// arguments are returned as the command line.
func newApp(args []string, stdout, stderr io.Writer) (*App, []string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	fset := flag.NewFlagSet("dampedfilter", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprint(stderr, usage)
		fset.PrintDefaults()
	}
	out := fset.String("out", cfg.ResultsDir, "Write result files to `dir`")
	formats := fset.String("formats", "", "Comma separated result formats (txt,json,yaml,xlsx,png)")
	level := fset.String("log-level", cfg.LogLevel.String(), "Log level")
	addr := fset.String("addr", cfg.Addr, "Listen address for serve")
	if err := fset.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg.ResultsDir = *out
	cfg.Addr = *addr
	if *formats != "" {
		if cfg.Formats, err = report.ParseFormats(*formats); err != nil {
			return nil, nil, fmt.Errorf("-formats: %w", err)
		}
	}
	if cfg.LogLevel, err = logrus.ParseLevel(*level); err != nil {
		return nil, nil, fmt.Errorf("-log-level: %w", err)
	}

	log := cfg.NewLogger()
	log.SetOutput(stderr)

	return &App{cfg: cfg, log: log, stdout: stdout}, fset.Args(), nil
}

func (a *App) run(ctx context.Context, cmd []string) error {
	if len(cmd) == 0 {
		return errors.New("no command given")
	}

	switch cmd[0] {
	case "calc":
		path := a.cfg.ParametersFile
		if len(cmd) > 1 {
			path = cmd[1]
		}
		return a.calc(path)
	case "defaults":
		path := a.cfg.ParametersFile
		if len(cmd) > 1 {
			path = cmd[1]
		}
		if err := params.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Default parameters written to %s\n", path)
		return nil
	case "serve":
		return a.serve(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd[0])
	}
}

func (a *App) calc(path string) error {
	log := a.log.WithFields(logrus.Fields{"run_id": uuid.New().String(), "path": path})

	pf, err := params.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := params.WriteDefault(path); werr != nil {
			return werr
		}
		fmt.Fprintf(a.stdout, "%s not found; a default file was created. Edit it and run again.\n", path)
		return nil
	}
	if err != nil {
		return err
	}
	log.WithField("encoding", pf.Encoding).Debug("parameters loaded")

	for _, key := range pf.Unknown {
		log.WithField("key", key).Warn("unknown parameter ignored")
	}
	for _, key := range pf.Parameters.Margins() {
		log.WithField("key", key).Warn("safety factor adds no margin")
	}

	results, s, err := dampedfilter.Run(pf.Parameters)
	if err != nil {
		return err
	}

	if err := report.WriteText(a.stdout, results); err != nil {
		return err
	}

	written, err := report.NewStore(a.cfg.ResultsDir, a.cfg.Formats).Save(s)
	for _, p := range written {
		log.WithField("format", filepath.Ext(p)).Debugf("wrote %s", p)
	}
	if err != nil {
		return err
	}
	log.WithField("dir", a.cfg.ResultsDir).Infof("saved %d result files", len(written))
	return nil
}

func (a *App) serve(ctx context.Context) error {
	if a.cfg.LogLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	h := server.NewHandler(a.log, a.cfg.MaxUploadBytes)
	srv := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: server.NewRouter(h),
	}

	errc := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.cfg.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func main() {
	a, cmd, err := newApp(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		stop()
		os.Exit(1)
	}
}
