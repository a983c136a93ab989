package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/obhq/wae"
	"github.com/obhq/wae/giobackend"
	"github.com/obhq/wae/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬ ┬┌─┐┌─┐
│││├─┤├┤
└┴┘┴ ┴└─┘

Await-style native window events.
    Version: %s

`

// maxWindows caps the number of windows opened at once.
const maxWindows = 16

// Version indicates the current build version.
var Version string

var (
	// Flags
	title      = flag.String("title", "wae", "Window title")
	width      = flag.Int("width", 800, "Window width")
	height     = flag.Int("height", 600, "Window height")
	windows    = flag.Int("windows", 1, "Number of windows to open")
	background = flag.String("bg", "", "Background image, local path or URL")
	fixed      = flag.Bool("fixed", false, "Disable window resizing")
	debug      = flag.Bool("debug", false, "Log every dispatched event")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	utils.EnableColors(term.IsTerminal(int(os.Stderr.Fd())))

	if *width <= 0 || *height <= 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nThe window width and height must be positive!", utils.ErrorMessage))
	}

	cfg := config{
		title:     *title,
		size:      wae.Size(uint32(*width), uint32(*height)),
		windows:   utils.Clamp(*windows, 1, maxWindows),
		resizable: !*fixed,
	}

	if *background != "" {
		bg, err := loadBackground(*background)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the background image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		cfg.background = bg
	}

	if term.IsTerminal(int(os.Stderr.Fd())) && !*debug {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ WAE", utils.StatusMessage),
			utils.DecorateText("⇢ waiting for the windows to close...", utils.DefaultMessage),
		)
		cfg.spinner = utils.NewSpinner(msg, time.Millisecond*100, true)
	}

	logger := log.New(os.Stderr, utils.DecorateText("wae: ", utils.StatusMessage), 0)
	exec := wae.New(giobackend.New(), wae.WithLogger(logger), wae.WithDebug(*debug))

	go func() {
		now := time.Now()
		err := exec.Run(func(ctx context.Context) error {
			return session(ctx, cfg, logger)
		})
		if cfg.spinner != nil {
			cfg.spinner.Stop()
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Window session failed: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stderr, "\nSession time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
		os.Exit(0)
	}()

	giobackend.Main()
}

// config holds what the session needs to open its windows.
type config struct {
	title      string
	size       wae.PhysicalSize[uint32]
	windows    int
	resizable  bool
	background image.Image
	spinner    *utils.Spinner
}
