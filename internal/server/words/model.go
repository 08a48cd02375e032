package words

import "time"

// Word is a dictionary entry pairing a source-language text with its
// translation.
type Word struct {
	ID             string    `json:"id"`
	SourceText     string    `json:"sourceText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetText     string    `json:"targetText"`
	TargetLanguage string    `json:"targetLanguage"`
	CreatedAt      time.Time `json:"-"`
}
