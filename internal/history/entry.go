// Package history keeps a local log of conversions performed by the CLI.
//
// Recording is opt-in through the history.enabled config key. Entries live in
// a SQLite database under the human home directory and can be listed, cleared
// or exported as JSON or YAML.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded conversion
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Format    string    `json:"format" yaml:"format"`
	Direction string    `json:"direction" yaml:"direction"`
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output" yaml:"output"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewEntry creates an entry stamped with a fresh ID and the current time
func NewEntry(format, direction, input, output string) *Entry {
	return &Entry{
		ID:        uuid.New().String(),
		Format:    format,
		Direction: direction,
		Input:     input,
		Output:    output,
		CreatedAt: time.Now().UTC(),
	}
}
