package edgelist

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/hopreach/metrics"
)

// MaxLineBytes is the longest line the scanner accepts.
const MaxLineBytes = 1 << 20

// Sentinel errors.
var (
	// ErrLoad wraps every failure to open or read an input.
	ErrLoad = errors.New("edgelist: load failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")

	// ErrBuilderNil is returned by Load for a nil builder.
	ErrBuilderNil = errors.New("edgelist: builder is nil")
)

// Record is one well-formed input line.
type Record struct {
	U, V string
	Line int // 1-based line number in the input
}

// Stats counts what a load saw.
type Stats struct {
	Lines    int // lines read, including skipped ones
	Records  int // well-formed edges
	Skipped  int // lines with a token count other than two
	Comments int // lines starting with the comment prefix
}

// Option configures parsing.
type Option func(*options)

type options struct {
	delim   rune // 0 splits on any run of whitespace
	comment string
	metrics *metrics.Metrics
	log     *slog.Logger
	err     error
}

func defaults() options {
	return options{log: slog.Default()}
}

// WithDelimiter splits each line on r instead of whitespace, trimming spaces
// around each token. r may not be a newline, carriage return or invalid rune.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r == '\n' || r == '\r' || r == utf8.RuneError || r < 0 {
			o.err = fmt.Errorf("%w: delimiter %q", ErrOptionViolation, r)
			return
		}
		if unicode.IsSpace(r) {
			r = 0
		}
		o.delim = r
	}
}

// ParseDelimiter maps a configuration value to a delimiter rune:
// "" or "whitespace" selects whitespace splitting, "tab" selects '\t',
// anything else must be exactly one rune.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "", "whitespace", "space":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: delimiter must be a single rune, got %q", ErrOptionViolation, s)
	}

	return r, nil
}

// WithCommentPrefix skips lines that start with prefix (after leading spaces).
// An empty prefix disables comment handling.
func WithCommentPrefix(prefix string) Option {
	return func(o *options) { o.comment = prefix }
}

// WithMetrics counts skipped lines on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger sets the logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func build(opts []Option) (options, error) {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
