package explorer

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// fileChecklist is the multi-select step of the ADD flow.
type fileChecklist struct {
	files   []string
	names   map[string]string // base name -> full path
	check   *widget.CheckGroup
	all     *widget.Check
	content fyne.CanvasObject
}

func newFileChecklist(files []string) *fileChecklist {
	l := &fileChecklist{files: files, names: make(map[string]string, len(files))}

	options := make([]string, 0, len(files))
	for _, f := range files {
		name := filepath.Base(f)
		l.names[name] = f
		options = append(options, name)
	}
	l.check = widget.NewCheckGroup(options, nil)
	l.all = widget.NewCheck("Select all", func(on bool) {
		if on {
			l.check.SetSelected(options)
		} else {
			l.check.SetSelected(nil)
		}
	})
	l.content = container.NewBorder(l.all, nil, nil, nil, container.NewVScroll(l.check))
	return l
}

// Selected returns the ticked files in folder order.
func (l *fileChecklist) Selected() []string {
	ticked := make(map[string]bool, len(l.check.Selected))
	for _, name := range l.check.Selected {
		ticked[l.names[name]] = true
	}
	var out []string
	for _, f := range l.files {
		if ticked[f] {
			out = append(out, f)
		}
	}
	return out
}
