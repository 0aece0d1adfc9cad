package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/cv-auditor/internal/skills"
	"github.com/jonathan/cv-auditor/internal/textcheck"
	"github.com/jonathan/cv-auditor/internal/types"
)

var (
	doubleSpacePattern       = regexp.MustCompile(`[^\s] {2,}[^\s]`)
	spaceBeforePunctPattern  = regexp.MustCompile(`\s[,.](\s|$)`)
	missingSpaceAfterPattern = regexp.MustCompile(`[,;:!?]\p{L}`)
	excessivePunctPattern    = regexp.MustCompile(`[!?]{2,}|\.{4,}`)
	emailSeparators          = strings.NewReplacer(".", " ", "_", " ", "-", " ", "+", " ")
)

const (
	minCapsWordLength = 4
	maxCapsWords      = 3
)

// gibberishTarget is one field scanned for noise with its severity
type gibberishTarget struct {
	path     string
	text     string
	long     bool
	category types.Category
	penalty  float64
}

// Typography checks layout, punctuation and text that looks like random typing.
type Typography struct {
	gibberish *textcheck.Classifier
	validator *skills.Validator
}

// NewTypography builds the typography rule.
func NewTypography(gibberish *textcheck.Classifier, validator *skills.Validator) *Typography {
	return &Typography{gibberish: gibberish, validator: validator}
}

func (r *Typography) Type() types.IssueType { return types.TypeTypography }

func (r *Typography) Check(p *types.CVProfile, _ Context) []types.Issue {
	fields := collectTextFields(p)

	var issues []types.Issue
	issues = append(issues, decorativeGlyphIssue(types.TypeTypography, fields)...)
	issues = append(issues, tableLayoutIssue(types.TypeTypography, fields)...)

	if f, _, ok := firstMatch(fields, doubleSpacePattern); ok {
		issues = append(issues, types.NewIssue(types.TypeTypography, "double_spaces", types.CategoryWarning, 3, f.path,
			"Double spaces between words", "Use a single space between words"))
	}
	if f, m, ok := firstMatch(fields, spaceBeforePunctPattern); ok {
		issues = append(issues, types.NewIssue(types.TypeTypography, "space_before_punctuation", types.CategoryWarning, 2, f.path,
			fmt.Sprintf("Space before punctuation: %q", strings.TrimSpace(m)),
			"Remove the space before commas and periods"))
	}
	if f, m, ok := firstMatch(fields, missingSpaceAfterPattern); ok {
		issues = append(issues, types.NewIssue(types.TypeTypography, "missing_space_after_punctuation", types.CategoryWarning, 2, f.path,
			fmt.Sprintf("Missing space after punctuation: %q", m),
			"Add a space after commas, semicolons and colons"))
	}
	if f, m, ok := firstMatch(fields, excessivePunctPattern); ok {
		issues = append(issues, types.NewIssue(types.TypeTypography, "excessive_punctuation", types.CategoryCritical, 5, f.path,
			fmt.Sprintf("Excessive punctuation: %q", m),
			"Keep a professional tone: one punctuation mark at a time"))
	}
	if capsWords(fields) >= maxCapsWords {
		issues = append(issues, types.NewIssue(types.TypeTypography, "excessive_caps", types.CategoryWarning, 4, "",
			"Too many words written in capitals",
			"Reserve capitals for acronyms and section headings"))
	}

	issues = append(issues, r.gibberishIssues(p)...)

	issues = append(issues, types.NewIssue(types.TypeTypography, "typography_reminder", types.CategoryInfo, 0, "",
		"Check that fonts, bullet styles and date formats are consistent throughout the document", ""))

	return issues
}

// capsWords counts all-capital words outside the skills list, where acronyms are expected.
func capsWords(fields []textField) int {
	count := 0
	for _, f := range fields {
		if strings.HasPrefix(f.path, "skills.") {
			continue
		}
		for _, w := range words(f.text) {
			if len([]rune(w)) >= minCapsWordLength && isUpperWord(w) {
				count++
			}
		}
	}
	return count
}

func isUpperWord(w string) bool {
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func (r *Typography) gibberishTargets(p *types.CVProfile) []gibberishTarget {
	info := p.PersonalInfo
	targets := []gibberishTarget{
		{path: "personalInfo.firstName", text: info.FirstName, category: types.CategoryCritical, penalty: 25},
		{path: "personalInfo.lastName", text: info.LastName, category: types.CategoryCritical, penalty: 25},
		{path: "personalInfo.title", text: info.Title, long: true, category: types.CategoryCritical, penalty: 20},
		{path: "summary", text: p.Summary, long: true, category: types.CategoryCritical, penalty: 20},
	}
	if local, _, found := strings.Cut(info.Email, "@"); found {
		targets = append(targets, gibberishTarget{path: "personalInfo.email", text: emailSeparators.Replace(local),
			long: true, category: types.CategoryCritical, penalty: 15})
	}
	for i, exp := range p.Experiences {
		targets = append(targets,
			gibberishTarget{path: fmt.Sprintf("experiences.%d.role", i), text: exp.Role, long: true, category: types.CategoryWarning, penalty: 15},
			gibberishTarget{path: fmt.Sprintf("experiences.%d.company", i), text: exp.Company, long: true, category: types.CategoryWarning, penalty: 10},
		)
		for j, task := range exp.Tasks {
			targets = append(targets, gibberishTarget{path: fmt.Sprintf("experiences.%d.tasks.%d", i, j), text: task,
				long: true, category: types.CategoryWarning, penalty: 10})
		}
	}
	for i, edu := range p.Educations {
		targets = append(targets,
			gibberishTarget{path: fmt.Sprintf("educations.%d.degree", i), text: edu.Degree, long: true, category: types.CategoryWarning, penalty: 10},
			gibberishTarget{path: fmt.Sprintf("educations.%d.school", i), text: edu.School, long: true, category: types.CategoryWarning, penalty: 10},
		)
	}
	return targets
}

func (r *Typography) gibberishIssues(p *types.CVProfile) []types.Issue {
	var issues []types.Issue
	for _, t := range r.gibberishTargets(p) {
		if isBlank(t.text) {
			continue
		}
		noisy := r.gibberish.IsGibberish(t.text)
		if t.long {
			noisy = r.gibberish.IsGibberishText(t.text)
		}
		if noisy {
			issues = append(issues, types.NewIssue(types.TypeTypography, "gibberish_text", t.category, t.penalty, t.path,
				fmt.Sprintf("Text looks like random characters: %q", strings.TrimSpace(t.text)),
				"Replace placeholder or random text with real content"))
		}
	}

	for i, skill := range p.Skills {
		if isBlank(skill) || r.validator.IsValidSkill(skill) {
			continue
		}
		issues = append(issues, types.NewIssue(types.TypeTypography, "invalid_skill", types.CategoryWarning, 10,
			fmt.Sprintf("skills.%d", i),
			fmt.Sprintf("Unrecognized skill: %q", strings.TrimSpace(skill)),
			"List real tools, methods or competencies"))
	}
	for i, lang := range p.Languages {
		if isBlank(lang.Name) || r.validator.IsValidLanguage(lang.Name) {
			continue
		}
		issues = append(issues, types.NewIssue(types.TypeTypography, "invalid_language", types.CategoryWarning, 10,
			fmt.Sprintf("languages.%d", i),
			fmt.Sprintf("Unrecognized language: %q", strings.TrimSpace(lang.Name)),
			"Name the language in full, for example English or Français"))
	}

	return issues
}
