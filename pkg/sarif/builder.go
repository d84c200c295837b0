package sarif

import (
	"encoding/json"
	"io"
)

// Builder constructs valid SARIF 2.1.0 documents.
type Builder struct {
	doc   *Document
	rules map[string]bool
}

// NewBuilder creates a SARIF builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		doc: &Document{
			Version: "2.1.0",
			Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
			Runs: []Run{{
				Tool: Tool{Driver: Driver{Name: toolName, Version: toolVersion}},
				// results must serialize as an array, never null.
				Results: []Result{},
			}},
		},
		rules: make(map[string]bool),
	}
}

func (b *Builder) run() *Run { return &b.doc.Runs[0] }

// AddRule registers a rule once; later calls with the same id are ignored.
func (b *Builder) AddRule(id, description, helpURI string) *Builder {
	if b.rules[id] {
		return b
	}
	b.rules[id] = true
	rule := ReportingDescriptor{ID: id, HelpURI: helpURI}
	if description != "" {
		rule.ShortDescription = &Message{Text: description}
	}
	d := &b.run().Tool.Driver
	d.Rules = append(d.Rules, rule)
	return b
}

// AddResult adds a diagnostic result to the current run. A zero line omits
// the region.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	b.run().Results = append(b.run().Results, newResult(ruleID, level, message, file, line, col))
	return b
}

// AddResultWithProperties adds a result carrying a property bag.
func (b *Builder) AddResultWithProperties(ruleID, level, message, file string, props map[string]string) *Builder {
	r := newResult(ruleID, level, message, file, 0, 0)
	if len(props) > 0 {
		r.Properties = props
	}
	b.run().Results = append(b.run().Results, r)
	return b
}

func newResult(ruleID, level, message, file string, line, col int) Result {
	r := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if file != "" {
		loc := PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: file}}
		if line > 0 {
			loc.Region = &Region{StartLine: line, StartColumn: col}
		}
		r.Locations = []Location{{PhysicalLocation: loc}}
	}
	return r
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	return b.doc
}

// WriteTo writes the SARIF document as JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
