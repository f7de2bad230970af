package backend

import "fmt"

// WindowOptions configures a Window at construction time. Zero values mean
// "use the default".
type WindowOptions struct {
	AppName   string `json:"appName" koanf:"app_name"`
	Title     string `json:"title" koanf:"title"`
	Width     int    `json:"width" koanf:"width"`
	Height    int    `json:"height" koanf:"height"`
	MinWidth  int    `json:"minWidth" koanf:"min_width"`
	MinHeight int    `json:"minHeight" koanf:"min_height"`
	MaxWidth  int    `json:"maxWidth" koanf:"max_width"`
	MaxHeight int    `json:"maxHeight" koanf:"max_height"`
	Resizable *bool  `json:"resizable" koanf:"resizable"`
	Devtools  bool   `json:"devtools" koanf:"devtools"`
}

const (
	defaultAppName = "Glacier App"
	defaultWidth   = 800
	defaultHeight  = 600
)

// DefaultWindowOptions returns the options used when none are given.
func DefaultWindowOptions() WindowOptions {
	resizable := true
	return WindowOptions{
		AppName:   defaultAppName,
		Title:     defaultAppName,
		Width:     defaultWidth,
		Height:    defaultHeight,
		Resizable: &resizable,
	}
}

// withDefaults returns a copy of o with every unset field taken from
// DefaultWindowOptions.
func (o WindowOptions) withDefaults() WindowOptions {
	d := DefaultWindowOptions()
	if o.AppName == "" {
		o.AppName = d.AppName
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Resizable == nil {
		o.Resizable = d.Resizable
	} else {
		r := *o.Resizable
		o.Resizable = &r
	}
	return o
}

// IsResizable reports whether the user may resize the window.
func (o WindowOptions) IsResizable() bool {
	return o.Resizable == nil || *o.Resizable
}

func (o WindowOptions) validate() error {
	dims := []struct {
		name  string
		value int
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"min width", o.MinWidth},
		{"min height", o.MinHeight},
		{"max width", o.MaxWidth},
		{"max height", o.MaxHeight},
	}
	for _, d := range dims {
		if d.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", d.name, d.value)
		}
	}
	if o.MaxWidth > 0 && o.MinWidth > o.MaxWidth {
		return fmt.Errorf("min width %d exceeds max width %d", o.MinWidth, o.MaxWidth)
	}
	if o.MaxHeight > 0 && o.MinHeight > o.MaxHeight {
		return fmt.Errorf("min height %d exceeds max height %d", o.MinHeight, o.MaxHeight)
	}
	return nil
}
