package rules

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-auditor/internal/types"
)

// Industry is the sector a profile is classified into
type Industry string

const (
	IndustryTech     Industry = "tech"
	IndustryFinance  Industry = "finance"
	IndustryCreative Industry = "creative"
	IndustrySales    Industry = "sales"
	IndustryGeneral  Industry = "general"
)

type industryPattern struct {
	industry Industry
	pattern  *regexp.Regexp
}

// industryPatterns are evaluated in order; the first match wins.
var industryPatterns = []industryPattern{
	{IndustryTech, regexp.MustCompile(`(?i)\b(developer|développeur|developpeur|entwickler|engineer|ingénieur|programmer|devops|software|logiciel|fullstack|full-stack|backend|frontend|data scientist|sre)\b`)},
	{IndustryFinance, regexp.MustCompile(`(?i)\b(finance|financial|financier|financière|comptable|accountant|accounting|auditor|auditeur|controller|contrôleur de gestion|banking|banque|trader|treasury|trésorerie)\b`)},
	{IndustryCreative, regexp.MustCompile(`(?i)\b(designer|graphiste|graphic|ux|ui|illustrat\w*|photograph\w*|art director|directeur artistique|directrice artistique|motion|creative|créatif|créative)\b`)},
	{IndustrySales, regexp.MustCompile(`(?i)\b(sales|commercial|commerciale|vente|ventes|vendeur|vendeuse|account manager|business development|key account|chargé d'affaires|vertrieb)\b`)},
}

var (
	developerTitlePattern = regexp.MustCompile(`(?i)\b(developer|développeur|developpeur|entwickler|programmer|software engineer|ingénieur logiciel|fullstack|full-stack|backend|frontend|devops)\b`)
	codeHosts             = []string{"github", "gitlab", "bitbucket", "codeberg"}
	financialFigures      = regexp.MustCompile(`(?i)\d+([.,]\d+)?\s*(%|€|\$|£|k€|m€|k\b|m\b|mds?\b|millions?|milliards?|billions?)|[€$£]\s?\d`)
	salesResults          = regexp.MustCompile(`(?i)\d+([.,]\d+)?\s*(%|€|\$|£|k€|m€|k\b|m\b)|[€$£]\s?\d|\b(quota|quotas|revenue|turnover|chiffre d'affaires|umsatz)\b`)
)

// techKeywords are the skills expected from a technical profile
var techKeywords = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "c", "c++", "c#", "rust",
	"php", "ruby", "kotlin", "swift", "scala", "sql", "postgresql", "mysql", "mongodb",
	"docker", "kubernetes", "aws", "azure", "gcp", "linux", "git", "react", "angular",
	"vue", "node", "node.js", "terraform", "spark", "html", "css",
}

// ClassifyIndustry classifies by title first and falls back to the whole text.
func ClassifyIndustry(p *types.CVProfile) Industry {
	if industry := matchIndustry(p.PersonalInfo.Title); industry != IndustryGeneral {
		return industry
	}
	return matchIndustry(p.FreeText())
}

func matchIndustry(text string) Industry {
	if isBlank(text) {
		return IndustryGeneral
	}
	for _, ip := range industryPatterns {
		if ip.pattern.MatchString(text) {
			return ip.industry
		}
	}
	return IndustryGeneral
}

// IndustrySpecific applies the expectations of the detected sector.
type IndustrySpecific struct{}

func NewIndustrySpecific() *IndustrySpecific { return &IndustrySpecific{} }

func (r *IndustrySpecific) Type() types.IssueType { return types.TypeIndustry }

func (r *IndustrySpecific) Check(p *types.CVProfile, _ Context) []types.Issue {
	info := p.PersonalInfo
	var issues []types.Issue

	switch ClassifyIndustry(p) {
	case IndustryTech:
		if developerTitlePattern.MatchString(info.Title) && !hasCodeHostLink(info) {
			issues = append(issues, types.NewIssue(types.TypeIndustry, "tech_missing_code_link", types.CategoryWarning, 8, "personalInfo.github",
				"No GitHub or GitLab link for a developer profile",
				"Link a code hosting profile that shows your work"))
		}
		if !hasTechKeyword(p.Skills) {
			issues = append(issues, types.NewIssue(types.TypeIndustry, "tech_missing_keywords", types.CategoryWarning, 10, "skills",
				"No programming language or technical tool in your skills",
				"List the languages, frameworks and tools you use"))
		}
	case IndustryFinance:
		if !financialFigures.MatchString(p.FreeText()) {
			issues = append(issues, types.NewIssue(types.TypeIndustry, "finance_missing_figures", types.CategoryWarning, 8, "experiences",
				"No amounts or percentages in a finance profile",
				"Quantify budgets, portfolios or savings you managed"))
		}
	case IndustryCreative:
		if !hasPortfolio(info) {
			issues = append(issues, types.NewIssue(types.TypeIndustry, "creative_missing_portfolio", types.CategoryCritical, 20, "personalInfo.portfolio",
				"No portfolio link for a creative profile",
				"Add a link to your portfolio (Behance, Dribbble or personal site)"))
		}
	case IndustrySales:
		if !salesResults.MatchString(p.FreeText()) {
			issues = append(issues, types.NewIssue(types.TypeIndustry, "sales_missing_results", types.CategoryCritical, 15, "experiences",
				"No quota, revenue or growth figures in a sales profile",
				"State targets reached, revenue generated or growth achieved"))
		}
	}

	return issues
}

func hasCodeHostLink(info types.PersonalInfo) bool {
	if !isBlank(info.GitHub) {
		return true
	}
	links := strings.ToLower(info.Website + " " + info.Portfolio)
	for _, host := range codeHosts {
		if strings.Contains(links, host) {
			return true
		}
	}
	return false
}

func hasTechKeyword(skills []string) bool {
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		tokens := strings.FieldsFunc(lower, func(r rune) bool {
			return r == ' ' || r == ',' || r == '/' || r == '(' || r == ')'
		})
		for _, tok := range tokens {
			for _, kw := range techKeywords {
				if tok == kw {
					return true
				}
			}
		}
	}
	return false
}

// hasPortfolio accepts a portfolio field or a personal website that is not a network profile.
func hasPortfolio(info types.PersonalInfo) bool {
	if !isBlank(info.Portfolio) {
		return true
	}
	website := strings.ToLower(strings.TrimSpace(info.Website))
	if website == "" {
		return false
	}
	for _, n := range professionalNetworks {
		if strings.Contains(website, n) {
			return false
		}
	}
	return true
}
