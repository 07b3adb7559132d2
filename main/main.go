package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/pborman/getopt"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/QuestScreen/esdemo/app"
	"github.com/QuestScreen/esdemo/config"
	"github.com/QuestScreen/esdemo/display"
	"github.com/QuestScreen/esdemo/internal/egl"
	"github.com/QuestScreen/esdemo/internal/gles"
	"github.com/QuestScreen/esdemo/internal/logging"
)

func init() {
	// EGL bindings and SDL events belong to the thread that created them.
	runtime.LockOSThread()
}

func loadConfig(path string, width, height int32, fullscreen, debug bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.Override(width, height, fullscreen, debug)
	return cfg, nil
}

func run() int {
	configPath := getopt.StringLong("config", 'c', "", "YAML config file to load", "path")
	writeConfig := getopt.StringLong("write-config", 0, "",
		"write the effective config to the given file and exit", "path")
	width := getopt.Int32Long("width", 'w', 0, "width of the window")
	height := getopt.Int32Long("height", 'h', 0, "height of the window")
	fullscreen := getopt.BoolLong("fullscreen", 'f', "start in fullscreen")
	debug := getopt.BoolLong("debug", 'd', "log frame rate and call sites")
	help := getopt.BoolLong("help", 0, "show this help")
	getopt.Parse()
	if *help {
		getopt.Usage()
		return 0
	}
	logging.Setup(*debug)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Printf("unable to initialize SDL: %s\n", err.Error())
		return 1
	}
	defer sdl.Quit()

	// key names can only be resolved after SDL has been initialized.
	cfg, err := loadConfig(*configPath, *width, *height, *fullscreen, *debug)
	if err != nil {
		log.Println(err)
		return 1
	}
	logging.Setup(cfg.Debug)
	if *writeConfig != "" {
		if err := cfg.Write(*writeConfig); err != nil {
			log.Println(err)
			return 1
		}
		fmt.Printf("wrote %s\n", *writeConfig)
		return 0
	}

	window, err := display.NewWindow(cfg)
	if err != nil {
		err = &app.SetupError{Stage: app.StageWindow, Inner: err}
		log.Println(err)
		return app.ExitCode(err)
	}
	defer window.Destroy()

	drv, err := egl.Load()
	if err != nil {
		err = &app.SetupError{Stage: app.StageContext, Inner: err}
		log.Println(err)
		return app.ExitCode(err)
	}
	gl, err := gles.Load()
	if err != nil {
		err = &app.SetupError{Stage: app.StageGraphics, Inner: err}
		log.Println(err)
		return app.ExitCode(err)
	}

	code, err := app.New(cfg, window, drv, gl).Run()
	if err != nil {
		return app.ExitCode(err)
	}
	return code
}

func main() {
	os.Exit(run())
}
