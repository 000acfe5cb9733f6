package args

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/jutil-go/jutil/src/internal/errors"
)

const (
	tagStart = "{{"
	tagEnd   = "}}"
)

// Help template placeholders.
const (
	TmplShort       = "short"
	TmplLong        = "long"
	TmplDescription = "description"
	TmplValue       = "value"
)

const (
	DefaultFlagTemplate        = "-{{short}}, --{{long}}{{value}}"
	DefaultDescriptionTemplate = "{{description}}"
)

// Indentation used by help output.
const (
	TitleIndent       = 4
	FlagIndent        = 8
	DescriptionIndent = 12
)

// SetHelpTemplates replaces the templates used to render each bundle's flag
// line and description line. Empty strings keep the current template.
func (d *Dispatcher) SetHelpTemplates(flag, description string) error {
	if flag != "" {
		t, err := fasttemplate.NewTemplate(flag, tagStart, tagEnd)
		if err != nil {
			return errors.NewConfigError("invalid flag template", err)
		}
		d.flagTmpl = t
	}
	if description != "" {
		t, err := fasttemplate.NewTemplate(description, tagStart, tagEnd)
		if err != nil {
			return errors.NewConfigError("invalid description template", err)
		}
		d.descTmpl = t
	}
	return nil
}

// PrintTitle writes title on the raw channel at TitleIndent.
func (d *Dispatcher) PrintTitle(title string) {
	d.log.SetIndent(TitleIndent)
	d.log.Rawf("%s\n", title)
	d.log.ResetIndent()
}

// PrintBundles writes two raw lines per bundle, the flag forms at
// FlagIndent and the description at DescriptionIndent, then resets the
// indentation.
func (d *Dispatcher) PrintBundles(bundles []Bundle) {
	for _, b := range bundles {
		d.log.SetIndent(FlagIndent)
		d.log.Rawf("%s\n", d.flagLine(b))
		d.log.SetIndent(DescriptionIndent)
		d.log.Rawf("%s\n", d.descriptionLine(b))
	}
	d.log.ResetIndent()
}

// WriteHelp renders the same text as PrintTitle followed by PrintBundles
// to w, without going through the logger.
func (d *Dispatcher) WriteHelp(w io.Writer, title string, bundles []Bundle) error {
	var b strings.Builder
	if title != "" {
		writeIndented(&b, TitleIndent, title)
	}
	for _, bundle := range bundles {
		writeIndented(&b, FlagIndent, d.flagLine(bundle))
		writeIndented(&b, DescriptionIndent, d.descriptionLine(bundle))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Dispatcher) flagLine(b Bundle) string {
	return d.flagTmpl.ExecuteString(placeholders(b))
}

func (d *Dispatcher) descriptionLine(b Bundle) string {
	return d.descTmpl.ExecuteString(placeholders(b))
}

func placeholders(b Bundle) map[string]interface{} {
	value := ""
	if b.ExpectsValue {
		value = " <value>"
	}
	return map[string]interface{}{
		TmplShort:       b.Short,
		TmplLong:        b.Long,
		TmplDescription: b.Description,
		TmplValue:       value,
	}
}

func writeIndented(b *strings.Builder, indent int, line string) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(line)
	b.WriteByte('\n')
}
