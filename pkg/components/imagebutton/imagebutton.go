package imagebutton

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var (
	DefaultHoverColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0x7f}
	DefaultHoverWidth = float32(10)
)

// ImageButton is a fixed size thumbnail bound to one file path. Primary,
// secondary and middle clicks each fire their own callback and a border is
// drawn while the pointer is over it.
type ImageButton struct {
	widget.BaseWidget
	Path  string
	Image *canvas.Image

	border        *canvas.Rectangle
	size          fyne.Size
	hovered       bool
	onTapped      func()
	onRightClick  func()
	onMiddleClick func()
}

// NewImageButton creates a button showing img at the given size
func NewImageButton(path string, img image.Image, size fyne.Size) *ImageButton {
	b := &ImageButton{Path: path, size: size}
	b.ExtendBaseWidget(b)
	b.Image = canvas.NewImageFromImage(img)
	b.Image.FillMode = canvas.ImageFillContain
	b.Image.SetMinSize(size)

	b.border = canvas.NewRectangle(color.Transparent)
	b.border.StrokeColor = DefaultHoverColor
	b.border.StrokeWidth = DefaultHoverWidth
	b.border.Hide()
	return b
}

// SetHoverStyle changes the colour and stroke width of the hover border
func (b *ImageButton) SetHoverStyle(c color.Color, width float32) {
	b.border.StrokeColor = c
	b.border.StrokeWidth = width
	b.border.Refresh()
}

// SetOnTapped sets the function to be called on a primary click
func (b *ImageButton) SetOnTapped(f func()) {
	b.onTapped = f
}

// SetOnRightClick sets the function to be called on a secondary click
func (b *ImageButton) SetOnRightClick(f func()) {
	b.onRightClick = f
}

// SetOnMiddleClick sets the function to be called on a middle click
func (b *ImageButton) SetOnMiddleClick(f func()) {
	b.onMiddleClick = f
}

func (b *ImageButton) Hovered() bool {
	return b.hovered
}

// Tapped handles the primary click
func (b *ImageButton) Tapped(_ *fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// TappedSecondary handles the right-click event
func (b *ImageButton) TappedSecondary(_ *fyne.PointEvent) {
	if b.onRightClick != nil {
		b.onRightClick()
	}
}

// MouseDown handles the middle button, primary and secondary arrive as taps
func (b *ImageButton) MouseDown(me *desktop.MouseEvent) {
	if me.Button == desktop.MouseButtonTertiary && b.onMiddleClick != nil {
		b.onMiddleClick()
	}
}

func (b *ImageButton) MouseUp(_ *desktop.MouseEvent) {}

func (b *ImageButton) MouseIn(_ *desktop.MouseEvent) {
	b.setHover(true)
}

func (b *ImageButton) MouseMoved(_ *desktop.MouseEvent) {}

func (b *ImageButton) MouseOut() {
	b.setHover(false)
}

func (b *ImageButton) setHover(on bool) {
	if b.hovered == on {
		return
	}
	b.hovered = on
	b.Refresh()
}

func (b *ImageButton) MinSize() fyne.Size {
	return b.size
}

// CreateRenderer implements the fyne.Widget interface
func (b *ImageButton) CreateRenderer() fyne.WidgetRenderer {
	return &imageButtonRenderer{button: b, objects: []fyne.CanvasObject{b.Image, b.border}}
}

type imageButtonRenderer struct {
	button  *ImageButton
	objects []fyne.CanvasObject
}

func (r *imageButtonRenderer) Layout(size fyne.Size) {
	r.button.Image.Move(fyne.NewPos(0, 0))
	r.button.Image.Resize(size)

	// the border sits inside the image, inset by half its stroke
	inset := r.button.border.StrokeWidth / 2
	r.button.border.Move(fyne.NewPos(inset, inset))
	r.button.border.Resize(fyne.NewSize(size.Width-2*inset, size.Height-2*inset))
}

func (r *imageButtonRenderer) MinSize() fyne.Size {
	return r.button.size
}

func (r *imageButtonRenderer) Refresh() {
	if r.button.hovered {
		r.button.border.Show()
	} else {
		r.button.border.Hide()
	}
	r.Layout(r.button.Size())
	canvas.Refresh(r.button.Image)
	canvas.Refresh(r.button.border)
}

func (r *imageButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *imageButtonRenderer) Destroy() {}

var (
	_ fyne.Tappable          = (*ImageButton)(nil)
	_ fyne.SecondaryTappable = (*ImageButton)(nil)
	_ desktop.Mouseable      = (*ImageButton)(nil)
	_ desktop.Hoverable      = (*ImageButton)(nil)
)
