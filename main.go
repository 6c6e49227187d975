package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/fonts"
	"github.com/automoto/jasmine/scenes"
	"github.com/automoto/jasmine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Settings() systems.SavedSettings
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

func NewGame(saved systems.SavedSettings, watcher *config.Watcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds:  image.Rectangle{},
		scene:   scenes.NewWorldScene(saved),
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.save()
		return ebiten.Termination
	}
	g.reloadConfig()
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func (g *Game) save() {
	if err := systems.SaveSettings(g.scene.Settings()); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// reloadConfig applies an edited override file without blocking the frame.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		if err := config.ReloadOverrides(path); err != nil {
			log.Printf("Warning: %v", err)
			return
		}
		log.Printf("Reloaded config overrides from %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("Warning: config watcher: %v", err)
	default:
	}
}

// options is the parsed command line.
type options struct {
	fps        int
	configPath string
	version    bool
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n", config.C.Title, config.C.Version)
	fmt.Fprintln(w, "A single player action RPG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: jasmine [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help         show this help and exit")
	fmt.Fprintln(w, "  -v, --version      print the version and exit")
	fmt.Fprintf(w, "      --slow         run at %d frames per second\n", config.C.SlowFPS)
	fmt.Fprintf(w, "      --fast         run at %d frames per second\n", config.C.FastFPS)
	fmt.Fprintln(w, "      --config FILE  apply YAML overrides from FILE and reload it on change")
}

// parseArgs reads the command line. flag.ErrHelp is returned for -h/--help.
func parseArgs(args []string, out io.Writer) (options, error) {
	fs := flag.NewFlagSet("jasmine", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { usage(out) }

	var opts options
	var slow, fast bool
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.BoolVar(&opts.version, "v", false, "print the version and exit")
	fs.BoolVar(&slow, "slow", false, "run slower")
	fs.BoolVar(&fast, "fast", false, "run faster")
	fs.StringVar(&opts.configPath, "config", "", "YAML override file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		usage(out)
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	opts.fps = config.C.FrameRate
	switch {
	case slow:
		opts.fps = config.C.SlowFPS
	case fast:
		opts.fps = config.C.FastFPS
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Println(config.C.Version)
		return
	}

	var watcher *config.Watcher
	if opts.configPath != "" {
		if err := config.LoadOverrides(opts.configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		watcher, err = config.Watch(opts.configPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", opts.configPath, err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.fps)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved := systems.LoadSettings()

	if err := ebiten.RunGame(NewGame(saved, watcher)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
