package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"math-helper/internal/assets"
	"math-helper/internal/buttons"
	"math-helper/internal/config"
	"math-helper/internal/logger"
	"math-helper/internal/screen"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	AppName    = "Math Helper"
	AppID      = "edu.coolmath.mathhelper"
	AppVersion = "0.11.4"

	component = "Application"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	screen  *screen.ModuleSelectScreen
	logger  logger.Logger
}

// NewApplication loads the Grade 1-2 tutorial buttons and then builds the
// window. An unreadable button image aborts startup before any window exists.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(cfg, log, func() fyne.App {
		fyneapp.SetMetadata(fyne.AppMetadata{
			ID:      AppID,
			Name:    AppName,
			Version: AppVersion,
		})
		return fyneapp.NewWithID(AppID)
	})
}

func newApplication(cfg config.Config, log logger.Logger, newApp func() fyne.App) (*Application, error) {
	log.Info(component, "starting application", map[string]interface{}{
		"version":    AppVersion,
		"asset_root": cfg.AssetRoot,
		"window":     fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
	})

	a := &Application{logger: log}

	loader := assets.NewFSLoader(os.DirFS(cfg.AssetRoot))
	set, err := buttons.NewGrade1TutorialButtons(loader,
		buttons.WithLogger(log),
		buttons.WithLauncher(a.launchTutorial),
	)
	if err != nil {
		return nil, fmt.Errorf("build tutorial buttons: %w", err)
	}

	a.fyneApp = newApp()
	a.window = a.fyneApp.NewWindow(AppName)
	a.window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	a.window.CenterOnScreen()
	a.window.SetMaster()

	a.screen = screen.NewModuleSelectScreen(set, log)
	a.window.SetTitle(fmt.Sprintf("%s - %s", AppName, a.screen.Title()))
	a.window.SetContent(a.screen.Content())

	log.Info(component, "initialization complete", map[string]interface{}{
		"buttons": set.NumberOfButtons(),
		"pages":   a.screen.PageCount(),
	})
	return a, nil
}

func (a *Application) launchTutorial(_ buttons.Screen, module buttons.Module, b buttons.ModuleButton) {
	message := fmt.Sprintf("Opening the %s Tutorial!", b.Name())
	a.logger.Info(component, message, map[string]interface{}{
		"module":  string(module),
		"ordinal": b.Ordinal(),
	})
	dialog.ShowInformation(b.Name(), message, a.window)
}

// Run shows the window and blocks until the application quits or ctx ends.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info(component, "shutdown requested", nil)
			fyne.Do(a.fyneApp.Quit)
		case <-done:
		}
	}()

	a.window.SetOnClosed(func() {
		a.logger.Info(component, "window closed", nil)
	})

	a.window.ShowAndRun()
	close(done)
	return nil
}
