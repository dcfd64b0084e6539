// Command textnorm normalizes free text and maps ranges of the normalized
// text back to the text as it was written.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/comment"
	"github.com/npillmayer/textnorm/normalized"
	"github.com/npillmayer/textnorm/sentence"
)

// CLI defines the command-line interface for textnorm.
type CLI struct {
	// Global flags
	Trace string `default:"error" enum:"debug,info,error" help:"Trace level (debug, info, error)"`
	NFKC  bool   `name:"nfkc" help:"Replace compatibility characters (ligatures, full-width letters) before normalizing"`

	Normalize NormalizeCmd `cmd:"" help:"Print the normalized text"`
	Translate TranslateCmd `cmd:"" help:"Translate a range of the normalized text to the original text"`
	Sentences SentencesCmd `cmd:"" help:"Split the normalized text into sentences"`
	Label     LabelCmd     `cmd:"" help:"Position the sentences of source code comments"`
}

// NormalizeCmd prints the normalized text of its input.
type NormalizeCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"Input file, '-' for stdin"`
	Settle  int    `default:"1" help:"Maximum number of normalization passes"`
	Changes bool   `help:"Print the change log"`
	JSON    bool   `help:"Output as JSON"`
}

func (c *NormalizeCmd) Run(in input, stdout io.Writer) error {
	s, err := in.load(c.File, normalized.Settle(c.Settle))
	if err != nil {
		return err
	}
	if c.JSON {
		report := normalizeReport{Normalized: s.Normalized()}
		if c.Changes {
			for _, ch := range s.Changes() {
				report.Changes = append(report.Changes, changeJSON{Range: jsonRange(ch.Range), Length: ch.Length})
			}
		}
		return writeJSON(stdout, report)
	}
	fmt.Fprintln(stdout, s.Normalized())
	if c.Changes {
		for i, ch := range s.Changes() {
			fmt.Fprintf(stdout, "%4d %v\n", i, ch)
		}
	}
	return nil
}

// TranslateCmd maps a range of the normalized text to the original text.
type TranslateCmd struct {
	File   string `arg:"" help:"Input file, '-' for stdin"`
	Start  int    `required:"" help:"Start of the range in the normalized text"`
	End    int    `required:"" help:"End of the range in the normalized text (exclusive)"`
	Settle int    `default:"1" help:"Maximum number of normalization passes"`
	JSON   bool   `help:"Output as JSON"`
}

func (c *TranslateCmd) Run(in input, stdout io.Writer) error {
	s, err := in.load(c.File, normalized.Settle(c.Settle))
	if err != nil {
		return err
	}
	r := textnorm.Range{Start: c.Start, End: c.End}
	if r.Start < 0 || r.Start > r.End || r.End > s.Len() {
		return fmt.Errorf("range %v out of bounds of normalized text %v", r, textnorm.RangeOf(s.Normalized()))
	}
	o := s.ToOriginal(r)
	if c.JSON {
		return writeJSON(stdout, translateReport{
			Normalized: spanJSON{Range: jsonRange(r), Text: r.In(s.Normalized())},
			Original:   spanJSON{Range: jsonRange(o), Text: o.In(s.Original())},
		})
	}
	fmt.Fprintf(stdout, "%v %q\n%v %q\n", r, r.In(s.Normalized()), o, o.In(s.Original()))
	return nil
}

// SentencesCmd lists the sentences of the normalized text together with their
// ranges in the original text.
type SentencesCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"Input file, '-' for stdin"`
	Settle int    `default:"1" help:"Maximum number of normalization passes"`
	JSON   bool   `help:"Output as JSON"`
}

func (c *SentencesCmd) Run(in input, stdout io.Writer) error {
	s, err := in.load(c.File, normalized.Settle(c.Settle))
	if err != nil {
		return err
	}
	ranges := sentence.Split(s.Normalized())
	originals := s.ToOriginalAll(ranges)
	if c.JSON {
		report := make([]sentenceJSON, len(ranges))
		for i, r := range ranges {
			report[i] = sentenceJSON{
				Normalized: spanJSON{Range: jsonRange(r), Text: r.In(s.Normalized())},
				Original:   spanJSON{Range: jsonRange(originals[i]), Text: originals[i].In(s.Original())},
			}
		}
		return writeJSON(stdout, report)
	}
	for i, r := range ranges {
		fmt.Fprintf(stdout, "%v %v %q\n", r, originals[i], r.In(s.Normalized()))
	}
	return nil
}

// LabelCmd positions the sentences of all comments of a source file.
type LabelCmd struct {
	File string `arg:"" help:"Source file, '-' for stdin"`
	Lang string `required:"" enum:"java,pharo,python" help:"Language of the source file (java, pharo, python)"`
	JSON bool   `help:"Output as JSON"`
}

func (c *LabelCmd) Run(in input, stdout io.Writer) error {
	lang, err := comment.ParseLanguage(c.Lang)
	if err != nil {
		return err
	}
	source, err := in.read(c.File)
	if err != nil {
		return err
	}
	sentences := comment.Sentences(source, lang)
	if c.JSON {
		report := make([]labelJSON, len(sentences))
		for i, s := range sentences {
			report[i] = labelJSON{
				Comment:    s.Comment,
				Range:      jsonRange(s.Range),
				Normalized: s.Normalized,
				Text:       s.Range.In(source),
			}
		}
		return writeJSON(stdout, report)
	}
	for _, s := range sentences {
		fmt.Fprintf(stdout, "%d %v %q\n", s.Comment, s.Range, s.Normalized)
	}
	return nil
}

// --- Input ------------------------------------------------------------

// input reads the texts to work on. Offsets reported by the commands refer
// to the decoded (and possibly NFKC-folded) text.
type input struct {
	stdin io.Reader
	nfkc  bool
}

// read reads a UTF-8 text from file name, or from stdin for "-".
// A byte order mark switches decoding to UTF-16.
func (in input) read(name string) (string, error) {
	r := in.stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("cannot open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var decoder transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if in.nfkc {
		decoder = transform.Chain(decoder, norm.NFKC)
	}
	b, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("cannot read input %s: %w", name, err)
	}
	tracer().P("input", name).Debugf("read %d bytes", len(b))
	return string(b), nil
}

func (in input) load(name string, opts ...normalized.Option) (*normalized.String, error) {
	text, err := in.read(name)
	if err != nil {
		return nil, err
	}
	return normalized.New(text, opts...), nil
}

// --- Main -------------------------------------------------------------

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var traceLevels = map[string]tracing.TraceLevel{
	"debug": tracing.LevelDebug,
	"info":  tracing.LevelInfo,
	"error": tracing.LevelError,
}

// run parses args and runs the selected command.
func run(args []string, stdin io.Reader, stdout io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("textnorm"),
		kong.Description("Normalize free text and keep track of where it came from"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}, options...)
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(traceLevels[cli.Trace])
	return ctx.Run(input{stdin: stdin, nfkc: cli.NFKC})
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "textnorm: %v\n", err)
		os.Exit(1)
	}
}
