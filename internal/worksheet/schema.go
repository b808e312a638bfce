package worksheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/gauss/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const schemaURL = "worksheet.schema.json"

var (
	printer = message.NewPrinter(language.English)
	schema  = compileSchema()
)

func compileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemas.WorksheetSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("parsing embedded %s: %v", schemaURL, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		panic(fmt.Sprintf("adding %s: %v", schemaURL, err))
	}
	return c.MustCompile(schemaURL)
}

// Validate checks raw worksheet YAML against the embedded schema and returns
// one message per violation, or nil when the document is valid. Messages
// name the distribution, step or query they refer to.
func Validate(data []byte) []string {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{fmt.Sprintf("schema: %v", err)}
	}

	var problems []string
	for _, leaf := range leaves(ve, nil) {
		problems = append(problems, locate(doc, leaf.InstanceLocation)+": "+leaf.ErrorKind.LocalizedString(printer))
	}
	return problems
}

// leaves flattens the cause tree to the errors that carry a concrete reason.
func leaves(ve *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return append(out, ve)
	}
	for _, c := range ve.Causes {
		out = leaves(c, out)
	}
	return out
}

// locate renders an instance location in worksheet terms, e.g.
// `step "posterior" params.right` or `query #1 on "prior" ppf[0]`.
func locate(doc any, loc []string) string {
	if len(loc) < 2 {
		if len(loc) == 0 {
			return "worksheet"
		}
		return loc[0]
	}

	var subject string
	switch loc[0] {
	case "distributions":
		subject = fmt.Sprintf("distribution %q", loc[1])
	case "steps":
		subject = "steps[" + loc[1] + "]"
		if name, ok := field(doc, loc[0], loc[1], "name"); ok {
			subject = fmt.Sprintf("step %q", name)
		}
	case "queries":
		subject = "queries[" + loc[1] + "]"
		if i, err := strconv.Atoi(loc[1]); err == nil {
			subject = fmt.Sprintf("query #%d", i+1)
		}
		if of, ok := field(doc, loc[0], loc[1], "of"); ok {
			subject += fmt.Sprintf(" on %q", of)
		}
	default:
		subject = loc[0] + "." + loc[1]
	}

	if rest := path(loc[2:]); rest != "" {
		return subject + " " + rest
	}
	return subject
}

// field returns doc[list][index][key] when it is a non-empty string.
func field(doc any, list, index, key string) (string, bool) {
	top, ok := doc.(map[string]any)
	if !ok {
		return "", false
	}
	items, ok := top[list].([]any)
	if !ok {
		return "", false
	}
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(items) {
		return "", false
	}
	item, ok := items[i].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := item[key].(string)
	return s, ok && s != ""
}

// path joins segments as a.b[0].c.
func path(segs []string) string {
	var b strings.Builder
	for _, s := range segs {
		if _, err := strconv.Atoi(s); err == nil {
			b.WriteString("[" + s + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}
