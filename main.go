package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/decker502/horde-survivors/pkg/app"
	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/embedded"
	"github.com/decker502/horde-survivors/pkg/logger"
	"github.com/decker502/horde-survivors/pkg/scene"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config        string `help:"Game tuning file (embedded path)." default:"data/game.yaml" env:"HORDE_CONFIG"`
	Assets        string `help:"Asset manifest file (embedded path)." default:"data/assets.yaml" env:"HORDE_ASSETS"`
	AssetsDir     string `help:"Load models from this directory instead of the embedded assets." type:"existingdir" env:"HORDE_ASSETS_DIR"`
	StubModels    bool   `help:"Do not load model files; use placeholder scenes." env:"HORDE_STUB_MODELS"`
	LogLevel      string `help:"Log level." default:"info" enum:"trace,debug,info,warn,error" env:"HORDE_LOG_LEVEL"`
	LogJSON       bool   `help:"Write logs as JSON lines." name:"log-json" env:"HORDE_LOG_JSON"`
	HeadlessTicks int    `help:"Run this many ticks without a window, then exit." env:"HORDE_HEADLESS_TICKS"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("horde-survivors"),
		kong.Description("Survive the horde."),
		kong.UsageOnError(),
	)

	logger.Init(CLI.LogLevel, CLI.LogJSON)
	embedded.Init(assetsFS, dataFS)

	if err := run(); err != nil {
		log.Error().Err(err).Msg("horde-survivors failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadGameConfig(CLI.Config)
	if err != nil {
		return err
	}
	manifest, err := config.LoadAssetManifest(CLI.Assets)
	if err != nil {
		return err
	}
	registry, err := assets.NewRegistryFromManifest(manifest)
	if err != nil {
		return err
	}
	if err := registry.Validate(types.AllAnimationTypes); err != nil {
		return fmt.Errorf("asset manifest %s: %w", CLI.Assets, err)
	}

	appCfg := app.Config{Game: cfg, Registry: registry}
	var fileLoader *assets.FileLoader
	if CLI.StubModels {
		appCfg.Loader = app.StubLoader(registry)
		appCfg.Templates = app.StubTemplates(registry)
	} else {
		models, err := modelFS()
		if err != nil {
			return err
		}
		fileLoader = assets.NewFileLoader(models, cfg.Loading.Workers)
		appCfg.Loader = fileLoader
		appCfg.Templates = scene.NewGLTFTemplates(fileLoader, cfg.Scene.MaxDepth)
	}

	game, err := app.New(appCfg)
	if err != nil {
		return err
	}

	// the tracker requests its handles inside app.New
	if fileLoader != nil {
		fileLoader.Start(context.Background())
	}

	if CLI.HeadlessTicks > 0 {
		if fileLoader != nil {
			fileLoader.Wait()
		}
		game.RunHeadless(CLI.HeadlessTicks)
		return nil
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(game)
}

// modelFS returns the file system model paths ("models/Anne.glb") resolve in.
func modelFS() (fs.FS, error) {
	if CLI.AssetsDir != "" {
		return os.DirFS(CLI.AssetsDir), nil
	}
	return embedded.Sub("assets")
}
