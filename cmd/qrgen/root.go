package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/form"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logo"
	"github.com/cristianadrielbraun/qrstudio/internal/payload"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/studio"
)

type options struct {
	config      string
	style       string
	dots        string
	finder      string
	fg          string
	bg          string
	transparent bool
	logo        string
	size        int
	output      string
	terminal    bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "qrgen",
		Short:        "Render styled QR codes for text or Wi-Fi networks",
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.config, "config", "", "config file (default ./config.yaml if present)")
	f.StringVar(&opts.style, "style", form.DefaultStyle, "style preset: "+styleNames())
	f.StringVar(&opts.dots, "dots", "", "dot type overriding the style: "+dotNames())
	f.StringVar(&opts.finder, "finder", "", "finder type overriding the style: square, dot, extra-rounded")
	f.StringVar(&opts.fg, "fg", form.DefaultForeground, "foreground colour")
	f.StringVar(&opts.bg, "bg", form.DefaultBackground, "background colour")
	f.BoolVar(&opts.transparent, "transparent", false, "leave the background transparent")
	f.StringVar(&opts.logo, "logo", "", "logo image (png, jpg, gif, webp or svg)")
	f.IntVar(&opts.size, "size", 0, "output size in pixels (default from config)")
	f.StringVarP(&opts.output, "output", "o", "qr-code.png", "output file; the extension picks png, svg or jpg")
	f.BoolVar(&opts.terminal, "terminal", false, "print the code to the terminal instead of writing a file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTextCmd(opts), newWiFiCmd(opts))
	return root
}

func newTextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "text <content>",
		Short: "Encode text or a URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := form.Default()
			state.Text = strings.Join(args, " ")
			state.SetMode(payload.ModeText)
			return run(cmd, opts, state)
		},
	}
}

func newWiFiCmd(opts *options) *cobra.Command {
	var ssid, password string
	cmd := &cobra.Command{
		Use:   "wifi",
		Short: "Encode Wi-Fi credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := form.Default()
			state.SetMode(payload.ModeWiFi)
			state.SSID = ssid
			state.Password = password
			return run(cmd, opts, state)
		},
	}
	cmd.Flags().StringVar(&ssid, "ssid", "", "network name")
	cmd.Flags().StringVar(&password, "password", "", "network password; empty for open networks")
	_ = cmd.MarkFlagRequired("ssid")
	return cmd
}

func run(cmd *cobra.Command, opts *options, state *form.State) error {
	state.Style = form.ParseStyle(opts.style)
	if opts.dots != "" {
		state.Style.Dots = render.ParseDotType(opts.dots)
	}
	if opts.finder != "" {
		state.Style.Finder = render.ParseFinderType(opts.finder)
	}
	state.Foreground = opts.fg
	state.Background = opts.bg
	state.Transparent = opts.transparent

	if !state.HasContent() {
		return studio.ErrNoContent
	}

	if opts.terminal {
		out, err := terminalQR(state.Data())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{Debug: opts.verbose || cfg.Log.Debug})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if opts.logo != "" {
		f, err := os.Open(opts.logo)
		if err != nil {
			return fmt.Errorf("open logo: %w", err)
		}
		img, _, err := logo.Decode(f)
		f.Close()
		if err != nil {
			return err
		}
		state.Logo = img
	}

	s := studio.New(studio.Config{
		Size:       cfg.Render.Size,
		MaxSize:    cfg.Render.MaxSize,
		QuietZone:  cfg.Render.QuietZone,
		Level:      render.ParseLevel(cfg.Render.ErrorCorrection),
		LogoScale:  cfg.Logo.Scale,
		LogoRadius: cfg.Logo.Radius,
		LogoBorder: cfg.Logo.Border,
	}, log)

	format := studio.ParseFormat(strings.TrimPrefix(filepath.Ext(opts.output), "."))
	art, err := s.Render(context.Background(), state, studio.Request{Format: format, Size: opts.size})
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, art.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	log.Infow("written", "file", opts.output, "format", format, "bytes", len(art.Body))
	return nil
}

func styleNames() string {
	names := make([]string, 0, len(form.Styles))
	for _, s := range form.Styles {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func dotNames() string {
	names := make([]string, 0, len(render.DotTypes))
	for _, t := range render.DotTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
