package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/cv-auditor/internal/types"
)

// textField is one free-text value of the profile with its field path
type textField struct {
	path string
	text string
}

// collectTextFields lists the non-empty free-text fields in document order.
func collectTextFields(p *types.CVProfile) []textField {
	var fields []textField
	add := func(path, text string) {
		if strings.TrimSpace(text) != "" {
			fields = append(fields, textField{path: path, text: text})
		}
	}

	add("personalInfo.title", p.PersonalInfo.Title)
	add("summary", p.Summary)
	for i, exp := range p.Experiences {
		add(fmt.Sprintf("experiences.%d.role", i), exp.Role)
		add(fmt.Sprintf("experiences.%d.company", i), exp.Company)
		for j, task := range exp.Tasks {
			add(fmt.Sprintf("experiences.%d.tasks.%d", i, j), task)
		}
	}
	for i, edu := range p.Educations {
		add(fmt.Sprintf("educations.%d.degree", i), edu.Degree)
		add(fmt.Sprintf("educations.%d.school", i), edu.School)
		add(fmt.Sprintf("educations.%d.description", i), edu.Description)
	}
	for i, skill := range p.Skills {
		add(fmt.Sprintf("skills.%d", i), skill)
	}

	return fields
}

// firstMatch returns the first field whose text matches re.
func firstMatch(fields []textField, re *regexp.Regexp) (textField, string, bool) {
	for _, f := range fields {
		if m := re.FindString(f.text); m != "" {
			return f, m, true
		}
	}
	return textField{}, "", false
}

// decorativeGlyphs are symbols that render as boxes or disappear in ATS parsers
var decorativeGlyphs = map[rune]bool{
	'★': true, '☆': true, '✓': true, '✔': true, '✗': true, '✘': true, '●': true,
	'○': true, '■': true, '□': true, '▪': true, '▫': true, '◆': true, '◇': true,
	'►': true, '▶': true, '→': true, '⇒': true, '♦': true, '♥': true, '❤': true,
	'✦': true, '✧': true, '❖': true, '➤': true, '➢': true, '☑': true, '☐': true,
}

// firstDecorativeGlyph scans fields in document order and stops at the first glyph found.
func firstDecorativeGlyph(fields []textField) (textField, rune, bool) {
	for _, f := range fields {
		for _, r := range f.text {
			if decorativeGlyphs[r] {
				return f, r, true
			}
		}
	}
	return textField{}, 0, false
}

// tableLayoutPattern matches tab characters or two pipes on one line, both typical of
// text pasted from a table.
var tableLayoutPattern = regexp.MustCompile(`\t|\|[^\n]*\|`)

func decorativeGlyphIssue(t types.IssueType, fields []textField) []types.Issue {
	f, glyph, found := firstDecorativeGlyph(fields)
	if !found {
		return nil
	}
	return []types.Issue{types.NewIssue(t, "decorative_glyph", types.CategoryWarning, 3, f.path,
		fmt.Sprintf("Decorative character '%c' found", glyph),
		"Replace symbols and icons with plain text or standard bullets")}
}

func tableLayoutIssue(t types.IssueType, fields []textField) []types.Issue {
	f, _, found := firstMatch(fields, tableLayoutPattern)
	if !found {
		return nil
	}
	return []types.Issue{types.NewIssue(t, "table_layout", types.CategoryWarning, 5, f.path,
		"Tabular layout detected (tabs or pipe-separated columns)",
		"Use a single-column layout; ATS parsers read tables out of order")}
}

// words splits text into letter-only words.
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
