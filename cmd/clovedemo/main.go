// Command clovedemo renders a sample clove canvas: shapes, gradients,
// blend modes, bidirectional text and filters, each on its own layer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/clove"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .jpg)")
		quality = flag.Int("quality", clove.DefaultJPEGQuality, "JPEG quality")
		verbose = flag.Bool("v", false, "log layer operations")
	)
	flag.Parse()

	if *verbose {
		clove.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	bg := clove.NewLinearGradient(0, 0, 0, float64(*height)).
		AddStop(0, clove.RGB(26, 51, 102)).
		AddStop(1, clove.RGB(128, 128, 153))
	c, err := clove.New(*width, *height, clove.WithBackground(bg), clove.WithJPEGQuality(*quality))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	steps := []struct {
		name string
		draw func(*clove.Layer) error
	}{
		{"shapes", drawShapesDemo},
		{"blend", drawBlendDemo},
		{"paths", drawPathDemo},
		{"text", drawTextDemo},
	}
	for _, s := range steps {
		l, err := c.CreateLayer(s.name)
		if err != nil {
			log.Fatalf("Failed to create layer %s: %v", s.name, err)
		}
		if err := s.draw(l); err != nil {
			log.Fatalf("Failed to draw %s: %v", s.name, err)
		}
	}

	if err := c.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d layers)\n", *output, *width, *height, len(c.Layers()))
}

func drawShapesDemo(l *clove.Layer) error {
	circles := []struct {
		x, y float64
		c    clove.Color
	}{
		{150, 150, clove.RGB(255, 77, 77).WithAlpha(204)},
		{200, 150, clove.RGB(77, 255, 77).WithAlpha(204)},
		{175, 200, clove.RGB(77, 77, 255).WithAlpha(204)},
	}
	for _, ci := range circles {
		if err := l.FillCircle(ci.x, ci.y, 60, ci.c); err != nil {
			return err
		}
	}

	if err := l.FillRoundedRect(350, 100, 120, 80, 15, clove.RGB(255, 204, 0)); err != nil {
		return err
	}
	if err := l.StrokeRect(350, 100, 120, 80, clove.White, 4); err != nil {
		return err
	}

	// A ring of squares with rotating hue.
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		center := clove.Pt(600, 150).Add(clove.Pt(70, 0).Rotate(angle))
		c := clove.HSL(float64(i)*45, 0.8, 0.6)
		if err := l.Draw(clove.Rect{X: center.X - 20, Y: center.Y - 20, W: 40, H: 40}, clove.Filled(c)); err != nil {
			return err
		}
	}
	return l.ApplyFilter(clove.DropShadow(4, 4, 3, clove.Black.WithAlpha(120)))
}

func drawBlendDemo(l *clove.Layer) error {
	g := clove.NewRadialGradient(60, 60, 60).
		AddStop(0, clove.NamedColor("orange")).
		AddStop(1, clove.NamedColor("purple"))
	if err := l.FillCircle(60, 60, 60, g); err != nil {
		return err
	}
	if err := l.SetDimensions(l.Width()/2, l.Height()/2); err != nil {
		return err
	}
	l.SetPosition(120, 60)
	l.SetBlendMode(clove.BlendMultiply)
	l.SetOpacity(0.8)
	return nil
}

func drawPathDemo(l *clove.Layer) error {
	p := clove.NewPath().
		MoveTo(150, 400).
		CubicTo(200, 350, 250, 450, 300, 400).
		CubicTo(350, 370, 400, 430, 450, 400)
	style := clove.DefaultStrokeStyle().
		WithWidth(6).
		WithCap(clove.LineCapRound).
		WithDash(18, 8)
	if err := l.StrokePath(p, clove.RGB(255, 128, 0), style); err != nil {
		return err
	}
	return l.FillStar(600, 400, 5, 60, 30, clove.Yellow)
}

func drawTextDemo(l *clove.Layer) error {
	style := clove.DefaultTextStyle().
		WithSize(28).
		WithColor(clove.White).
		WithAlign(clove.AlignCenter).
		WithWidth(clove.FullPageWidth())
	if _, err := l.DrawText("clove: layers, blending and text", 0, 480, style); err != nil {
		return err
	}
	_, err := l.DrawText("مرحبا بالعالم", 0, 530, style.WithSize(24).WithColor(clove.NamedColor("gold")))
	return err
}
