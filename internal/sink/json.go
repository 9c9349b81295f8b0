package sink

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONSink writes the report as a 2-space-indented JSON object with exactly
// two keys, "readings" and "summary". The readings array preserves
// chronological order.
type JSONSink struct {
	// Path is the output file, relative paths resolve against the working
	// directory. An existing file is truncated.
	Path string
}

// Write serializes rep and overwrites the file at Path.
func (s *JSONSink) Write(rep *Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("sink: marshal report: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("sink: write report: %w", err)
	}
	return nil
}
