package certificate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrMissingField is returned when a required render field is empty
var ErrMissingField = errors.New("missing required certificate field")

// Config holds configuration for the certificate renderer
type Config struct {
	// Width of the certificate in pixels
	Width int

	// Height of the certificate in pixels
	Height int
}

// renderer implements the Renderer interface using a 2D drawing
// context. The parsed fonts are immutable; glyph faces hold mutable
// buffers, so each Render call builds its own.
type renderer struct {
	width    int
	height   int
	titleTTF *opentype.Font
	bodyTTF  *opentype.Font
}

// New creates a new certificate renderer
func New(cfg *Config) (*renderer, error) {
	width := 1200
	height := 850

	if cfg != nil {
		if cfg.Width > 0 {
			width = cfg.Width
		}
		if cfg.Height > 0 {
			height = cfg.Height
		}
	}

	titleTTF, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse title font: %w", err)
	}

	bodyTTF, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body font: %w", err)
	}

	return &renderer{
		width:    width,
		height:   height,
		titleTTF: titleTTF,
		bodyTTF:  bodyTTF,
	}, nil
}

// Render produces one PNG certificate for the given context
func (r *renderer) Render(input *RenderInput) ([]byte, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input is nil", ErrMissingField)
	}
	if input.ParticipantName == "" {
		return nil, fmt.Errorf("%w: participant name", ErrMissingField)
	}
	if input.HackathonTitle == "" {
		return nil, fmt.Errorf("%w: hackathon title", ErrMissingField)
	}
	if input.TeamName == "" {
		return nil, fmt.Errorf("%w: team name", ErrMissingField)
	}
	if input.IsWinner && input.Rank < 1 {
		return nil, fmt.Errorf("%w: rank", ErrMissingField)
	}

	titleFace, err := r.face(r.titleTTF, 52)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()

	nameFace, err := r.face(r.titleTTF, 44)
	if err != nil {
		return nil, err
	}
	defer nameFace.Close()

	bodyFace, err := r.face(r.bodyTTF, 26)
	if err != nil {
		return nil, err
	}
	defer bodyFace.Close()

	w := float64(r.width)
	h := float64(r.height)

	dc := gg.NewContext(r.width, r.height)

	dc.SetRGB(0.98, 0.97, 0.94)
	dc.Clear()

	// Border, gold for winners
	if input.IsWinner {
		dc.SetRGB(0.72, 0.55, 0.12)
	} else {
		dc.SetRGB(0.22, 0.28, 0.45)
	}
	dc.SetLineWidth(6)
	dc.DrawRectangle(30, 30, w-60, h-60)
	dc.Stroke()

	dc.SetRGB(0.12, 0.12, 0.18)

	dc.SetFontFace(titleFace)
	heading := "Certificate of Participation"
	if input.IsWinner {
		heading = "Certificate of Achievement"
	}
	dc.DrawStringAnchored(heading, w/2, h*0.2, 0.5, 0.5)

	dc.SetFontFace(bodyFace)
	dc.DrawStringAnchored(input.HackathonTitle, w/2, h*0.3, 0.5, 0.5)
	dc.DrawStringAnchored("awarded to", w/2, h*0.4, 0.5, 0.5)

	dc.SetFontFace(nameFace)
	dc.DrawStringAnchored(input.ParticipantName, w/2, h*0.5, 0.5, 0.5)

	dc.SetFontFace(bodyFace)
	if input.IsWinner {
		line := fmt.Sprintf("%s place - %s (total score %.1f)", ordinal(input.Rank), input.TeamName, input.TotalScore)
		dc.DrawStringAnchored(line, w/2, h*0.62, 0.5, 0.5)
	} else {
		dc.DrawStringAnchored(fmt.Sprintf("member of %s", input.TeamName), w/2, h*0.62, 0.5, 0.5)
	}

	if input.Date != "" {
		dc.DrawStringAnchored(input.Date, w/2, h*0.8, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode certificate: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *renderer) face(ttf *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return face, nil
}

// ordinal returns the English ordinal for a rank (1st, 2nd, 3rd, ...)
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
