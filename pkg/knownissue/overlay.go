package knownissue

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// overlayFile is the on-disk format of an extra known-issues file:
//
//	issues:
//	  - owner: SDK
//	    message: Missing method in SDK generation
//	    languages: [java]
//	    versions: [beta]
//	    snippets: [group-getmembergroups, user-getmembergroups]
type overlayFile struct {
	Issues []overlayRule `yaml:"issues"`
}

type overlayRule struct {
	Owner     string   `yaml:"owner"`
	Message   string   `yaml:"message"`
	Languages []string `yaml:"languages"`
	Versions  []string `yaml:"versions"`
	Snippets  []string `yaml:"snippets"`
}

// LoadOverlay parses a known-issues YAML document into rules. An empty
// document yields no rules. Unknown fields, owners, languages or versions are
// errors so typos can't silently disable an entry.
func LoadOverlay(r io.Reader) ([]Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc overlayFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding known issues: %w", err)
	}

	rules := make([]Rule, 0, len(doc.Issues))
	for i, raw := range doc.Issues {
		rule, err := raw.rule()
		if err != nil {
			return nil, fmt.Errorf("known issue #%d: %w", i+1, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (o overlayRule) rule() (Rule, error) {
	owner, err := ParseOwner(o.Owner)
	if err != nil {
		return Rule{}, err
	}
	if o.Message == "" {
		return Rule{}, errors.New("message is required")
	}
	if len(o.Snippets) == 0 {
		return Rule{}, errors.New("at least one snippet is required")
	}

	r := Rule{Owner: owner, Message: o.Message, Snippets: o.Snippets}
	for _, s := range o.Languages {
		lang, err := snippet.ParseLanguage(s)
		if err != nil {
			return Rule{}, err
		}
		r.Languages = append(r.Languages, lang)
	}
	for _, s := range o.Versions {
		v, err := snippet.ParseVersion(s)
		if err != nil {
			return Rule{}, err
		}
		r.Versions = append(r.Versions, v)
	}
	return r, nil
}
