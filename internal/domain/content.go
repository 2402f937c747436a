package domain

import (
	"errors"
	"fmt"
)

// SourceKind tags which content source produced a record.
type SourceKind string

const (
	SourceSpace SourceKind = "space"
	SourceArt   SourceKind = "art"
)

var (
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrNoDisplayableMedia = errors.New("no displayable media")
	ErrAllSourcesFailed   = errors.New("all content sources failed")
)

// Content is the normalized record both sources produce. Title and
// Explanation are in the source's original language.
type Content struct {
	Source      SourceKind
	Title       string
	Explanation string
	ImageURL    string
	VideoURL    string // only for space videos; ImageURL is then the thumbnail
	Attribution string
	Theme       Theme
}

func (c Content) IsVideo() bool {
	return c.VideoURL != ""
}

func (c Content) Validate() error {
	switch c.Source {
	case SourceSpace, SourceArt:
	default:
		return fmt.Errorf("unknown source kind %q", c.Source)
	}
	if c.ImageURL == "" {
		return ErrNoDisplayableMedia
	}
	if c.VideoURL != "" && c.Source != SourceSpace {
		return fmt.Errorf("video url on %s content", c.Source)
	}
	return nil
}
