// Package explorer is the collection view: an ADD button above a scrollable
// grid of thumbnails, one per collected file.
package explorer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"thumbshelf/pkg/collection"
	"thumbshelf/pkg/colorutils"
	"thumbshelf/pkg/components/imagebutton"
	"thumbshelf/pkg/fileutils"
	"thumbshelf/pkg/opener"
	"thumbshelf/pkg/options"
	"thumbshelf/pkg/thumbnail"
)

var (
	defaultTop    = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	defaultBottom = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

type Explorer struct {
	window   fyne.Window
	coll     *collection.Collection
	renderer *thumbnail.Renderer
	opts     *options.Options
	logger   zerolog.Logger

	open       func(path string) error
	content    fyne.CanvasObject
	scroll     *container.Scroll
	addButton  *widget.Button
	thumbnails []*imagebutton.ImageButton
}

// New builds the view for coll. Call Refresh once to draw the loaded entries.
func New(w fyne.Window, coll *collection.Collection, renderer *thumbnail.Renderer, opts *options.Options, logger zerolog.Logger) *Explorer {
	e := &Explorer{
		window:   w,
		coll:     coll,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
		open:     opener.Open,
	}

	background := canvas.NewVerticalGradient(
		colorutils.HexToColorOr(opts.GradientTop, defaultTop),
		colorutils.HexToColorOr(opts.GradientBottom, defaultBottom),
	)
	e.addButton = widget.NewButton("ADD", e.ShowAddDialog)
	e.scroll = container.NewScroll(container.NewGridWithColumns(opts.Columns))
	e.content = container.NewStack(background, container.NewBorder(e.addButton, nil, nil, nil, e.scroll))
	return e
}

// SetOpener replaces the function used to open a file with its default application.
func (e *Explorer) SetOpener(open func(path string) error) {
	e.open = open
}

func (e *Explorer) Content() fyne.CanvasObject {
	return e.content
}

// Thumbnails returns the buttons of the current grid, in collection order.
func (e *Explorer) Thumbnails() []*imagebutton.ImageButton {
	return e.thumbnails
}

// Refresh rebuilds the whole grid from the collection.
func (e *Explorer) Refresh() {
	size := fyne.NewSize(float32(e.opts.ThumbWidth), float32(e.opts.ThumbHeight))
	hover := colorutils.HexToColorOr(e.opts.HoverColor, imagebutton.DefaultHoverColor)

	grid := container.NewGridWithColumns(e.opts.Columns)
	e.thumbnails = nil
	for _, path := range e.coll.Paths() {
		override, _ := e.coll.CustomImage(path)
		button := imagebutton.NewImageButton(path, e.renderer.Thumbnail(path, override), size)
		button.SetHoverStyle(hover, e.opts.HoverWidth)
		button.SetOnTapped(func() { e.OpenFile(path) })
		button.SetOnRightClick(func() { e.ShowCustomImageDialog(path) })
		button.SetOnMiddleClick(func() { e.DeletePath(path) })

		e.thumbnails = append(e.thumbnails, button)
		grid.Add(container.NewCenter(button))
	}

	e.scroll.Content = grid
	e.scroll.Refresh()
	e.logger.Debug().Int("entries", len(e.thumbnails)).Msg("grid redrawn")
}

// AddPaths appends paths to the collection and redraws.
func (e *Explorer) AddPaths(paths ...string) {
	if len(paths) == 0 {
		return
	}
	if err := e.coll.Add(paths...); err != nil {
		e.reportError(err, "failed to save added files")
	}
	e.logger.Info().Int("count", len(paths)).Msg("files added")
	e.Refresh()
}

// DeletePath removes path and its override, then redraws.
func (e *Explorer) DeletePath(path string) {
	if err := e.coll.Delete(path); err != nil {
		e.reportError(err, "failed to save deletion")
	}
	e.logger.Info().Str("path", path).Msg("file removed")
	e.Refresh()
}

// SetCustomImage shows image in place of path's own thumbnail.
func (e *Explorer) SetCustomImage(path, image string) {
	if err := e.coll.SetCustomImage(path, image); err != nil {
		e.reportError(err, "failed to save custom image")
	}
	e.logger.Info().Str("path", path).Str("image", image).Msg("custom image set")
	e.Refresh()
}

// OpenFile hands path to the platform's default application.
func (e *Explorer) OpenFile(path string) {
	if err := e.open(path); err != nil {
		e.reportError(err, "failed to open file")
		return
	}
	e.logger.Info().Str("path", path).Msg("opened")
}

// ShowAddDialog asks for a folder, then for the files in it to add.
func (e *Explorer) ShowAddDialog() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			e.reportError(err, "folder dialog failed")
			return
		}
		if uri == nil {
			return
		}
		files, err := fileutils.GetDirFiles(uri.Path())
		if err != nil {
			e.reportError(err, "failed to list folder")
			return
		}
		e.showChecklist(files)
	}, e.window)
}

func (e *Explorer) showChecklist(files []string) {
	if len(files) == 0 {
		dialog.ShowInformation("Select Files", "This folder has no files.", e.window)
		return
	}
	list := newFileChecklist(files)
	d := dialog.NewCustomConfirm("Select Files", "Add", "Cancel", list.content, func(ok bool) {
		if ok {
			e.AddPaths(list.Selected()...)
		}
	}, e.window)
	d.Resize(fyne.NewSize(480, 420))
	d.Show()
}

// ShowCustomImageDialog lets the user pick the image displayed for path.
func (e *Explorer) ShowCustomImageDialog(path string) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			e.reportError(err, "image dialog failed")
			return
		}
		if reader == nil {
			return
		}
		image := reader.URI().Path()
		reader.Close()
		e.SetCustomImage(path, image)
	}, e.window)
	d.SetFilter(storage.NewExtensionFileFilter(fileutils.ImageExtensions()))
	d.Show()
}

// HandleDrop adds local files dropped onto the window.
func (e *Explorer) HandleDrop(_ fyne.Position, uris []fyne.URI) {
	var paths []string
	for _, uri := range uris {
		if uri.Scheme() != "file" {
			e.logger.Warn().Str("uri", uri.String()).Msg("ignoring non-file drop")
			continue
		}
		paths = append(paths, uri.Path())
	}
	e.AddPaths(paths...)
}

func (e *Explorer) reportError(err error, msg string) {
	e.logger.Error().Err(err).Msg(msg)
	if e.window != nil {
		dialog.ShowError(err, e.window)
	}
}
