// Package render expands the placeholder tokens of a modulefile template.
//
// The placeholder set is fixed:
//
//	{{name}}         module name
//	{{version}}      module version
//	{{description}}  wrapped and indented description
//	{{url}}          homepage, may be empty
//	{{admin}}        display name of the acting user
//	{{asurite}}      contact address, account id plus domain
//	{{date}}         creation date, YYYY-MM-DD
//
// Any other {{...}} token is copied through unchanged. Substituted values
// are never scanned again, so a value that happens to contain a placeholder
// is inserted literally.
package render

import (
	"regexp"
	"strings"

	"github.com/rcops/mkmodule/pkg/fields"
)

// Placeholder tokens
const (
	TokenName        = "{{name}}"
	TokenVersion     = "{{version}}"
	TokenDescription = "{{description}}"
	TokenURL         = "{{url}}"
	TokenAdmin       = "{{admin}}"
	TokenAsurite     = "{{asurite}}"
	TokenDate        = "{{date}}"
)

// Tokens lists the recognized placeholders in substitution order
var Tokens = []string{
	TokenName,
	TokenVersion,
	TokenDescription,
	TokenURL,
	TokenAdmin,
	TokenAsurite,
	TokenDate,
}

var tokenPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Values maps each placeholder to its replacement for rec
func Values(rec *fields.Record) map[string]string {
	return map[string]string{
		TokenName:        rec.Name,
		TokenVersion:     rec.Version,
		TokenDescription: rec.FormattedDescription,
		TokenURL:         rec.URL,
		TokenAdmin:       rec.DisplayName,
		TokenAsurite:     rec.EmailAddress,
		TokenDate:        rec.CreationDate,
	}
}

// Render substitutes every recognized placeholder in template with the
// matching field of rec.
func Render(template string, rec *fields.Record) string {
	values := Values(rec)
	pairs := make([]string, 0, 2*len(Tokens))
	for _, token := range Tokens {
		pairs = append(pairs, token, values[token])
	}
	// A Replacer makes one left-to-right pass over template, so text it
	// inserts is never matched again.
	return strings.NewReplacer(pairs...).Replace(template)
}

// Unrecognized returns the distinct {{...}} tokens in template that Render
// leaves untouched, in order of first appearance.
func Unrecognized(template string) []string {
	known := make(map[string]bool, len(Tokens))
	for _, token := range Tokens {
		known[token] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, match := range tokenPattern.FindAllString(template, -1) {
		if known[match] || seen[match] {
			continue
		}
		seen[match] = true
		out = append(out, match)
	}
	return out
}
