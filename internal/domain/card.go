package domain

import "time"

// Translation is the outcome of translating a record's text. Title and
// Explanation always hold usable text: the translation when Translated is
// true, the untranslated input otherwise.
type Translation struct {
	Title       string
	Explanation string
	Translated  bool
	Err         error
}

// Message is the outcome of composing the personal note. Text is the
// source's default message whenever Generated is false.
type Message struct {
	Text      string
	Generated bool
	Err       error
}

// Card is everything the renderer needs to build the email body.
type Card struct {
	Content       Content
	Translation   Translation
	Message       Message
	RecipientName string
	SenderName    string
	Date          time.Time
}

// RunReport summarises one invocation.
type RunReport struct {
	RunID      string
	Source     SourceKind
	SourceName string
	Title      string
	Recipients int
	Translated bool
	Generated  bool
	Sent       bool
	SendErr    error
	Duration   time.Duration
}
