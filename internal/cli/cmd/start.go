package cmd

import (
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/viper"

	"github.com/slidedrift/slidedrift/internal/cli/cmd/utils"
	"github.com/slidedrift/slidedrift/internal/compositor"
	"github.com/slidedrift/slidedrift/internal/ipc"
	"github.com/slidedrift/slidedrift/internal/playback"
	"github.com/slidedrift/slidedrift/internal/screens"
	"github.com/slidedrift/slidedrift/internal/watcher"
)

// StartPlayer starts the slideshow daemon, optionally forking into the
// background first.
func StartPlayer(background bool) {
	if background && os.Getenv("BACKGROUND_PROCESS") != "1" {
		ctx := &daemon.Context{
			Env: append(os.Environ(), "BACKGROUND_PROCESS=1"),
		}
		child, err := ctx.Reborn()
		if err != nil {
			log.Fatalf("Failed to daemonize: %v", err)
		}
		if child != nil {
			log.Infof("slidedrift started in the background, PID %d", child.Pid)
			return
		}
		defer ctx.Release()
	}

	runPlayer()
}

func runPlayer() {
	log.Infof("slidedrift starting in PID %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Info("slidedrift is already running, exiting")
		os.Exit(0)
	}

	folders := make([]string, 0)
	for _, f := range viper.GetStringSlice("folders") {
		folders = append(folders, utils.CanonicalPath(f))
	}

	kind, err := compositor.ParseKind(viper.GetString("transition"))
	if err != nil {
		log.Fatalf("Invalid transition: %v", err)
	}

	screen := screens.Select(monitorProvider().Screens(), viper.GetInt("monitor"))
	canvasW, canvasH := screen.Bounds.Dx(), screen.Bounds.Dy()

	cfg := playback.Config{
		Folders:            folders,
		Duration:           time.Duration(viper.GetInt("duration")) * time.Second,
		Transition:         kind,
		TransitionDuration: time.Duration(viper.GetInt("transition_duration_ms")) * time.Millisecond,
		TransitionSteps:    viper.GetInt("transition_steps"),
		Shuffle:            viper.GetBool("shuffle"),
		MaxFailures:        viper.GetInt("max_failures"),
		Debounce:           time.Duration(viper.GetInt("debounce_ms")) * time.Millisecond,
		CanvasWidth:        canvasW,
		CanvasHeight:       canvasH,
		MaxCacheEntries:    viper.GetInt("max_cache_entries"),
		MaxCacheBytes:      viper.GetInt64("max_cache_bytes"),
	}

	deps := playback.Deps{}
	w, err := watcher.New(folders)
	if err != nil {
		log.Warnf("Folder watching disabled: %v", err)
	} else {
		deps.Changes = w.Events()
		defer w.Close()
	}

	controller := playback.New(cfg, deps)

	go func() {
		log.Info("Starting socket server")
		ipc.Start(controller)
	}()

	if err := controller.Run(); err != nil {
		log.Fatalf("%v", err)
	}

	os.Remove(ipc.SocketPath())
	log.Info("slidedrift exited")
}

// monitorProvider builds the monitor list. With no live display
// connection the configured canvas dimensions describe a single screen.
func monitorProvider() screens.Provider {
	w := viper.GetInt("canvas_width")
	h := viper.GetInt("canvas_height")
	if w <= 0 || h <= 0 {
		w, h = 1920, 1080
	}
	return screens.NewStatic(screens.Screen{Index: 0, Bounds: image.Rect(0, 0, w, h)})
}

func setupRotatingLogger() {
	home := os.Getenv("HOME")
	logDir := filepath.Join(home, ".local", "share", "slidedrift")
	logPath := filepath.Join(logDir, "slidedrift.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	log.SetLevel(log.InfoLevel)
}
