package output

import "encoding/json"

// JSONFormatter formats results as JSON Lines, one object per matched path.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

func (f *JSONFormatter) Format(buf []byte, result Result) []byte {
	typ := "file"
	if result.Kind == Dir {
		typ = "directory"
	}
	data, _ := json.Marshal(jsonEntry{Path: result.Path, Type: typ})
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
