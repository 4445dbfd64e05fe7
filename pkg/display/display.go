// Package display presents a rendered image in a desktop window.
package display

import (
	"fmt"
	"image"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/df07/go-tinytracer/pkg/core"
)

// Show opens a window titled title that displays img stretched to the window
// size. It blocks until the window is closed or Escape is pressed, and must
// be called from the main goroutine.
func Show(img *image.RGBA, title string) error {
	var showErr error
	driver.Main(func(s screen.Screen) {
		showErr = run(s, img, title)
	})
	return showErr
}

// ShouldClose reports whether event ends the display loop
func ShouldClose(event any) bool {
	switch e := event.(type) {
	case lifecycle.Event:
		return e.To == lifecycle.StageDead
	case key.Event:
		return e.Code == key.CodeEscape && e.Direction == key.DirPress
	}
	return false
}

// Scale stretches src over all of dst
func Scale(dst *image.RGBA, src image.Image) {
	if dst.Bounds().Size() == src.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// run is the window event loop. The window buffer is rebuilt lazily on the
// first paint after a resize.
func run(s screen.Screen, img *image.RGBA, title string) error {
	bounds := img.Bounds()
	window, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  title,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Release()

	logger := core.Logger()
	logger.Info("window opened", "title", title, "width", bounds.Dx(), "height", bounds.Dy())

	var buffer screen.Buffer
	defer func() {
		if buffer != nil {
			buffer.Release()
		}
	}()
	windowSize := bounds.Size()

	for {
		event := window.NextEvent()
		if ShouldClose(event) {
			logger.Info("window closed")
			return nil
		}

		switch e := event.(type) {
		case size.Event:
			windowSize = e.Size()
			if buffer != nil {
				buffer.Release()
				buffer = nil
			}

		case paint.Event:
			if windowSize.X <= 0 || windowSize.Y <= 0 {
				continue
			}
			if buffer == nil {
				buffer, err = s.NewBuffer(windowSize)
				if err != nil {
					return fmt.Errorf("failed to create window buffer: %w", err)
				}
				Scale(buffer.RGBA(), img)
				logger.Debug("window buffer rebuilt", "width", windowSize.X, "height", windowSize.Y)
			}
			window.Upload(image.Point{}, buffer, buffer.Bounds())
			window.Publish()

		case error:
			logger.Warn("window event error", "error", e)
		}
	}
}
