package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version int               `json:"version"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Env     map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the screen before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is shown after its delay; annotations are printed below the frame.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	header, err := json.Marshal(castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Env:     map[string]string{"TERM": "xterm-256color"},
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	elapsed := 0.0
	for _, f := range frames {
		elapsed += f.Delay.Seconds()

		var b strings.Builder
		b.WriteString(clearScreen)
		// Terminals need CRLF in raw output.
		b.WriteString(strings.ReplaceAll(f.Content, "\n", "\r\n"))
		if f.Annotation != "" {
			b.WriteString("\r\n")
			b.WriteString(f.Annotation)
		}

		event, err := json.Marshal([]any{elapsed, "o", b.String()})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", event); err != nil {
			return err
		}
	}
	return nil
}
