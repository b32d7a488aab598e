package output

// TextFormatter renders one matched path per line, optionally styled by
// kind (directory vs. file) when color is enabled.
type TextFormatter struct {
	styles   Styles
	useColor bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, useColor bool) *TextFormatter {
	return &TextFormatter{styles: styles, useColor: useColor}
}

func (f *TextFormatter) Format(buf []byte, result Result) []byte {
	if f.useColor {
		style := f.styles.File
		if result.Kind == Dir {
			style = f.styles.Dir
		}
		buf = append(buf, style.Render(result.Path)...)
	} else {
		buf = append(buf, result.Path...)
	}
	buf = append(buf, '\n')
	return buf
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
