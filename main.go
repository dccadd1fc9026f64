package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/llehouerou/spectra/internal/app"
	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/errmsg"
	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/player"
	"github.com/llehouerou/spectra/internal/playlist"
	"github.com/llehouerou/spectra/internal/ui/gfx"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

const programName = "spectra"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	config string
	font   string
	help   bool
	files  []string
}

func parseArgs(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	var opts options
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "extra TOML configuration file, loaded last")
	fs.StringVar(&opts.font, "font", "", "font file used for every label (overrides the configuration)")
	fs.BoolVarP(&opts.help, "help", "h", false, "show the key and mouse controls")
	fs.Usage = func() { fmt.Fprint(stderr, usage(fs)) }

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	opts.files = fs.Args()
	return opts, fs, nil
}

func usage(fs *pflag.FlagSet) string {
	return fmt.Sprintf("Usage: %s [flags] file...\n\nFiles may be audio files or .m3u playlists.\n\nFlags:\n%s",
		programName, fs.FlagUsages())
}

func helpText(fs *pflag.FlagSet) string {
	theme := styles.Default()
	heading := styles.ApplyBoldGradient(programName, theme.Spectrum, theme.Accent)
	return heading + "\n\n" + usage(fs) + "\n" + keymap.HelpText(theme) + "\n"
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 1
	}
	if opts.help {
		fmt.Fprint(stdout, helpText(fs))
		return 0
	}
	if len(opts.files) == 0 {
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		return 1
	}
	if opts.font != "" {
		cfg.Font = opts.font
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	theme, err := styles.FromConfig(cfg.Colors)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		return 1
	}

	tracks, err := playlist.Collect(opts.files)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpCollectTracks, err))
		return 1
	}
	slog.Debug("playlist ready", "tracks", len(tracks))

	face, err := gfx.LoadFont(cfg.Font, cfg.FontSize)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpLoadFont, cfg.Font, err))
		return 1
	}

	p := player.New()
	p.SetMinDistance(cfg.SoundPosition.MinDistance)
	defer p.Stop()

	h := app.New(cfg, theme, face, p, playlist.NewQueue(tracks...))
	if err := h.Start(); err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpOpenTrack, err))
		return 1
	}

	if err := app.Run(h, cfg); err != nil {
		op := errmsg.OpRunWindow
		if errors.Is(err, app.ErrNoMoreMusic) {
			op = errmsg.OpOpenTrack
		}
		fmt.Fprintln(stderr, errmsg.Format(op, err))
		return 1
	}
	return 0
}
