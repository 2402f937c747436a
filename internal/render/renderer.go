// Package render builds the HTML email body.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"dailycard/internal/domain"
)

//go:embed templates/card.html
var templateFS embed.FS

const DateLayout = "02/01/2006"

// Renderer fills the card template.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/card.html")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type view struct {
	Theme         domain.Theme
	Title         string
	Explanation   string
	ImageURL      string
	VideoURL      string
	Attribution   string
	MessageLines  []string
	RecipientName string
	SenderName    string
	Date          string
}

// Render returns the HTML document for card.
func (r *Renderer) Render(card domain.Card) (string, error) {
	theme := card.Content.Theme
	if theme == (domain.Theme{}) {
		theme = domain.ThemeFor(card.Content.Source)
	}

	v := view{
		Theme:         theme,
		Title:         card.Translation.Title,
		Explanation:   card.Translation.Explanation,
		ImageURL:      card.Content.ImageURL,
		VideoURL:      card.Content.VideoURL,
		Attribution:   card.Content.Attribution,
		MessageLines:  splitLines(card.Message.Text),
		RecipientName: card.RecipientName,
		SenderName:    card.SenderName,
		Date:          card.Date.Format(DateLayout),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
