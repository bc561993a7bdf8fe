package logger

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
)

const (
	defaultDateLayout = "2006-01-02"
	defaultTimeLayout = "2006-01-02_15-04-05"
)

// layoutTokens translates the YYYY-MM-DD style tokens used in sink paths
// to Go reference-time layouts. Longer tokens come first.
var layoutTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// PathTemplate is a file path containing time placeholders such as
// "log_folder/{time:YYYY-MM-DD}.log" or "log_folder/{date}.log"
type PathTemplate struct {
	raw      string
	segments []pathSegment
}

type pathSegment struct {
	literal string
	layout  string
}

// ParsePathTemplate parses a sink path template
func ParsePathTemplate(raw string) (*PathTemplate, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty path", errs.ErrInvalidSink)
	}

	tmpl := &PathTemplate{raw: raw}
	rest := raw
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			tmpl.segments = append(tmpl.segments, pathSegment{literal: rest})
			break
		}
		if open > 0 {
			tmpl.segments = append(tmpl.segments, pathSegment{literal: rest[:open]})
		}

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed placeholder in %q", errs.ErrInvalidSink, raw)
		}
		layout, err := placeholderLayout(rest[open+1 : open+end])
		if err != nil {
			return nil, fmt.Errorf("%w: %v in %q", errs.ErrInvalidSink, err, raw)
		}
		tmpl.segments = append(tmpl.segments, pathSegment{layout: layout})
		rest = rest[open+end+1:]
	}
	return tmpl, nil
}

func placeholderLayout(placeholder string) (string, error) {
	name, format, hasFormat := strings.Cut(placeholder, ":")
	switch name {
	case "date":
		if hasFormat {
			return "", fmt.Errorf("placeholder {date} takes no format")
		}
		return defaultDateLayout, nil
	case "time":
		if !hasFormat {
			return defaultTimeLayout, nil
		}
		if format == "" {
			return "", fmt.Errorf("empty time format")
		}
		return layoutTokens.Replace(format), nil
	default:
		return "", fmt.Errorf("unknown placeholder {%s}", placeholder)
	}
}

// Render substitutes every placeholder with t formatted accordingly
func (p *PathTemplate) Render(t time.Time) string {
	var b strings.Builder
	for _, seg := range p.segments {
		if seg.layout != "" {
			b.WriteString(t.Format(seg.layout))
			continue
		}
		b.WriteString(seg.literal)
	}
	return b.String()
}

// String returns the template as it was written
func (p *PathTemplate) String() string {
	return p.raw
}
