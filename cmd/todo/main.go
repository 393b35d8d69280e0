package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Makepad-fr/tada-menu/internal/cli"
	"github.com/Makepad-fr/tada-menu/internal/config"
	"github.com/Makepad-fr/tada-menu/internal/logging"
	"github.com/Makepad-fr/tada-menu/internal/todo"
	"github.com/Makepad-fr/tada-menu/internal/tui"
	"github.com/Makepad-fr/tada-menu/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns an exit code (0 ok, 1 input failure, 2 usage).
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}

	// Root flags override the environment.
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: "+strings.Join(ui.Themes, ", "))
	fs.StringVar(&cfg.Color, "color", cfg.Color, "color output: auto, always or never")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "front-end: menu or tui")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}

	theme, err := ui.ThemeByName(cfg.Theme)
	if err == nil {
		err = cfg.Validate()
	}
	var mode ui.ColorMode
	if err == nil {
		mode, err = ui.ParseColorMode(cfg.Color)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}
	log.Debug("starting", "theme", theme.Name, "color", mode, "ui", cfg.UI)

	p := ui.NewPrinter(stdout, stderr, theme, mode)
	list := todo.New()
	if strings.EqualFold(cfg.UI, config.UITUI) {
		err = tui.Run(list, stdin, stdout, p, log)
	} else {
		err = cli.New(list, stdin, p, log).Run()
	}
	if err != nil {
		fmt.Fprintln(stderr)
		p.Fail(err.Error())
		return 1
	}
	return 0
}
