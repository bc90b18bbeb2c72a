package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"thumbshelf/pkg/apptheme"
	"thumbshelf/pkg/collection"
	"thumbshelf/pkg/explorer"
	"thumbshelf/pkg/logger"
	"thumbshelf/pkg/options"
	"thumbshelf/pkg/profiling"
	"thumbshelf/pkg/thumbcache"
	"thumbshelf/pkg/thumbnail"
)

func main() {
	appLogger := logger.InitLogger()

	opts := options.Options{}.InitDefault()
	if err := opts.Validate(); err != nil {
		appLogger.Fatal().Err(err).Msg("invalid options")
	}

	if opts.Profiling {
		profiler, err := profiling.SetupProfiling(opts.ProfilingServer, appLogger)
		if err != nil {
			appLogger.Warn().Err(err).Msg("profiling disabled")
		} else {
			defer profiler.Stop()
		}
	}

	// a state file that exists but does not parse is fatal so it is never overwritten
	coll, err := collection.Load(opts.StatePath)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", opts.StatePath).Msg("failed to load collection")
	}
	appLogger.Info().Int("entries", coll.Len()).Str("path", opts.StatePath).Msg("collection loaded")

	var cache thumbnail.Cache
	if opts.CachePath != "" {
		c, err := thumbcache.Open(opts.CachePath)
		if err != nil {
			appLogger.Warn().Err(err).Msg("thumbnail cache disabled")
		} else {
			defer func() {
				if err := c.Vacuum(); err != nil {
					appLogger.Warn().Err(err).Msg("thumbnail cache vacuum failed")
				}
				c.Close()
			}()
			cache = c
		}
	}
	renderer := thumbnail.NewRenderer(opts.ThumbWidth, opts.ThumbHeight, opts.PlaceholderPath, cache, appLogger)

	a := app.NewWithID("io.thumbshelf.app")
	a.Settings().SetTheme(apptheme.ShelfTheme{})
	if icon, err := fyne.LoadResourceFromPath(opts.PlaceholderPath); err == nil {
		a.SetIcon(icon)
	}

	w := a.NewWindow("File Explorer")
	ex := explorer.New(w, coll, renderer, opts, appLogger)
	w.SetContent(ex.Content())
	w.SetOnDropped(ex.HandleDrop)
	w.SetMaster()
	// fyne has no maximise call
	w.Resize(fyne.NewSize(1280, 800))
	ex.Refresh()

	w.ShowAndRun()
}
