package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alfredoptarigan/resume-screener/internal/models"
)

const (
	nameLineWindow     = 10
	maxExplicitYears   = 50
	earliestCareerYear = 1950
)

// SkillDefinition is a canonical skill and the spellings that map to it.
type SkillDefinition struct {
	Name    string
	Aliases []string
}

type ExtractorConfig struct {
	PhonePatterns []string
	Skills        []SkillDefinition
	// ReferenceDate closes open-ended ranges such as "2019 - Present".
	ReferenceDate time.Time
}

var DefaultPhonePatterns = []string{
	`(?:\+?1[\s.-]?)?(?:\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}`,
	`\+\d{1,3}(?:[\s.-]?\d{2,4}){2,5}`,
}

var DefaultSkills = []SkillDefinition{
	{Name: "aws", Aliases: []string{"amazon web services"}},
	{Name: "angular", Aliases: []string{"angularjs"}},
	{Name: "azure"},
	{Name: "c#", Aliases: []string{"csharp"}},
	{Name: "c++", Aliases: []string{"cpp"}},
	{Name: "cloud"},
	{Name: "css", Aliases: []string{"css3"}},
	{Name: "data analysis", Aliases: []string{"data analytics"}},
	{Name: "deep learning"},
	{Name: "django"},
	{Name: "docker"},
	{Name: "excel", Aliases: []string{"ms excel", "microsoft excel"}},
	{Name: "flask"},
	{Name: "gcp", Aliases: []string{"google cloud"}},
	{Name: "git", Aliases: []string{"github", "gitlab"}},
	{Name: "golang", Aliases: []string{"go lang"}},
	{Name: "html", Aliases: []string{"html5"}},
	{Name: "java"},
	{Name: "javascript", Aliases: []string{"ecmascript"}},
	{Name: "jenkins"},
	{Name: "kubernetes", Aliases: []string{"k8s"}},
	{Name: "linux"},
	{Name: "machine learning"},
	{Name: "mongodb", Aliases: []string{"mongo"}},
	{Name: "nlp", Aliases: []string{"natural language processing"}},
	{Name: "node.js", Aliases: []string{"nodejs"}},
	{Name: "numpy"},
	{Name: "pandas"},
	{Name: "postgresql", Aliases: []string{"postgres"}},
	{Name: "power bi", Aliases: []string{"powerbi"}},
	{Name: "python"},
	{Name: "pytorch"},
	{Name: "r"},
	{Name: "react", Aliases: []string{"react.js", "reactjs"}},
	{Name: "scikit-learn", Aliases: []string{"sklearn", "scikit learn"}},
	{Name: "spark", Aliases: []string{"apache spark", "pyspark"}},
	{Name: "sql"},
	{Name: "statistics"},
	{Name: "tableau"},
	{Name: "tensorflow"},
	{Name: "terraform"},
	{Name: "typescript"},
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		PhonePatterns: DefaultPhonePatterns,
		Skills:        DefaultSkills,
		ReferenceDate: time.Now(),
	}
}

var (
	reEmail         = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)*\.[A-Za-z]{2,}`)
	reNameToken     = regexp.MustCompile(`^\p{L}[\p{L}.'\-]*$`)
	reExplicitYears = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*\+?\s*(?:-\s*\d{1,2}\s*)?(?:years?|yrs?)\b`)
	reDateRange     = regexp.MustCompile(`(?i)\b(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+|(\d{1,2})/)?((?:19|20)\d{2})\s*(?:-|–|—|to|until)\s*(?:(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+|(\d{1,2})/)?((?:19|20)\d{2})|(present|current|now|today|date))\b`)
	reFieldLead     = regexp.MustCompile(`(?i)^[\s.,:'’-]*(?:degree\s+)?(?:(?:of|in)\s+)?(?:(?:science|arts|engineering|technology|commerce)\s+(?:in|of)\s+)?`)
	reFieldCut      = regexp.MustCompile(`(?i)[,;|()\d/–—]| - | at | from | with | gpa`)
	reFieldPhrase   = regexp.MustCompile(`^\p{L}[\p{L}&' ]*`)
)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

type degreeRule struct {
	level    models.EducationLevel
	patterns []*regexp.Regexp
}

// Keyword alternatives are wrapped so that a match must sit between
// non-letters. Group 1 is the keyword itself.
func degreePattern(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}])(` + strings.Join(alternatives, "|") + `)(?:[^\p{L}]|$)`)
}

// Undotted abbreviations only count when upper-case and followed by "in" or
// "of": "MS in Data Science" is a degree, "MS Excel" is not.
func abbreviationPattern(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}])(` + strings.Join(alternatives, "|") + `) +(?i:in|of)(?:[^\p{L}]|$)`)
}

// find returns the submatch index of the earliest keyword, or nil.
func (r degreeRule) find(text string) []int {
	var best []int
	for _, re := range r.patterns {
		if loc := re.FindStringSubmatchIndex(text); loc != nil && (best == nil || loc[2] < best[2]) {
			best = loc
		}
	}
	return best
}

func (r degreeRule) matches(text string) bool {
	for _, re := range r.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var degreeRules = []degreeRule{
	{models.EducationDoctorate, []*regexp.Regexp{
		degreePattern(`ph\.?\s?d\.?`, `doctorate`, `doctoral`, `doctor of philosophy`),
	}},
	// A bare "master" needs degree context so "Scrum Master" is not a degree.
	{models.EducationMaster, []*regexp.Regexp{
		degreePattern(`master['’]?s`, `master +(?:of|in|degree)`, `m\.\s?sc?\.?`, `msc`, `mba`, `m\.?\s?tech`, `m\.?\s?eng`, `m\.a\.`, `mca`),
		abbreviationPattern(`MS`, `MA`),
	}},
	{models.EducationBachelor, []*regexp.Regexp{
		degreePattern(`bachelor'?s?`, `b\.\s?sc?\.?`, `bsc`, `b\.?\s?tech`, `b\.?\s?eng`, `b\.e\.`, `b\.a\.`, `bca`, `undergraduate degree`),
		abbreviationPattern(`BS`, `BA`),
	}},
	{models.EducationDiploma, []*regexp.Regexp{
		degreePattern(`diploma`, `associate'?s? degree`, `associate of`),
	}},
}

var experienceHeaders = map[string]bool{
	"experience":              true,
	"work experience":         true,
	"professional experience": true,
	"relevant experience":     true,
	"employment":              true,
	"employment history":      true,
	"work history":            true,
	"career history":          true,
}

var otherHeaders = map[string]bool{
	"education":        true,
	"skills":           true,
	"technical skills": true,
	"projects":         true,
	"certifications":   true,
	"certificates":     true,
	"summary":          true,
	"profile":          true,
	"objective":        true,
	"awards":           true,
	"achievements":     true,
	"publications":     true,
	"languages":        true,
	"interests":        true,
	"hobbies":          true,
	"references":       true,
	"contact":          true,
	"volunteering":     true,
	"courses":          true,
}

// Words that disqualify a line from being a name.
var nonNameWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true, "summary": true,
	"profile": true, "objective": true, "experience": true, "education": true,
	"skills": true, "contact": true, "references": true, "projects": true,
	"engineer": true, "developer": true, "scientist": true, "analyst": true,
	"manager": true, "consultant": true, "designer": true, "intern": true,
	"university": true, "college": true, "institute": true, "school": true,
	"bachelor": true, "master": true, "phone": true, "email": true, "address": true,
	"street": true, "road": true, "avenue": true, "senior": true, "junior": true,
}

type skillMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// FieldExtractor derives a CandidateProfile from normalized resume text.
// It is safe for concurrent use.
type FieldExtractor struct {
	phone     []*regexp.Regexp
	skills    []skillMatcher
	terms     map[string]bool // every skill name and alias, lower-cased
	reference time.Time
}

func NewFieldExtractor(cfg ExtractorConfig) (*FieldExtractor, error) {
	if cfg.ReferenceDate.IsZero() {
		cfg.ReferenceDate = time.Now()
	}

	e := &FieldExtractor{reference: cfg.ReferenceDate, terms: make(map[string]bool)}

	for _, p := range cfg.PhonePatterns {
		re, err := regexp.Compile(`(?:^|[^\d])(` + p + `)(?:[^\d]|$)`)
		if err != nil {
			return nil, fmt.Errorf("invalid phone pattern %q: %w", p, err)
		}
		e.phone = append(e.phone, re)
	}

	seen := make(map[string]bool)
	for _, def := range cfg.Skills {
		name := strings.ToLower(strings.TrimSpace(def.Name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		m := skillMatcher{name: name}
		for _, term := range append([]string{name}, def.Aliases...) {
			term = strings.ToLower(term)
			e.terms[strings.Join(strings.Fields(term), " ")] = true
			m.patterns = append(m.patterns, skillPattern(term))
		}
		e.skills = append(e.skills, m)
	}

	return e, nil
}

// A skill must not be glued to another token: "pythonic" is not "python",
// while "c++" and "node.js" keep their punctuation. A dot right before the
// skill only blocks it when it follows a word, as in "asp.net"; an ellipsis
// ("Skills...Python") does not.
func skillPattern(term string) *regexp.Regexp {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?:^\.?|[^a-z0-9+#.]|[^a-z0-9+#]\.)` + strings.Join(words, `\s+`) + `(?:[^a-z0-9+#]|$)`)
}

// SkillNames returns the canonical skill vocabulary in match order.
func (e *FieldExtractor) SkillNames() []string {
	names := make([]string, len(e.skills))
	for i, s := range e.skills {
		names[i] = s.name
	}
	return names
}

// Extract never fails; every field falls back to its zero value.
func (e *FieldExtractor) Extract(doc NormalizedText) models.CandidateProfile {
	return models.CandidateProfile{
		Name:            e.extractName(doc.Text),
		Email:           reEmail.FindString(doc.Text),
		Phone:           e.extractPhone(doc.Text),
		Education:       e.extractEducation(doc.Text),
		ExperienceYears: e.extractExperience(doc.Text),
		Skills:          e.extractSkills(doc.Lower),
	}
}

func (e *FieldExtractor) extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameLineWindow {
			break
		}
		if name, ok := e.properName(line); ok {
			return name
		}
	}
	return ""
}

func (e *FieldExtractor) properName(line string) (string, bool) {
	if strings.ContainsAny(line, "@:|,/") {
		return "", false
	}
	for _, rule := range degreeRules {
		if rule.matches(line) {
			return "", false
		}
	}
	// Headings such as "Machine Learning" are skills, not people.
	if e.terms[strings.ToLower(strings.Join(strings.Fields(line), " "))] {
		return "", false
	}

	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return "", false
	}

	for _, tok := range tokens {
		if !reNameToken.MatchString(tok) {
			return "", false
		}
		first := []rune(tok)[0]
		if !unicode.IsUpper(first) {
			return "", false
		}
		if nonNameWords[strings.ToLower(strings.Trim(tok, ".'-"))] {
			return "", false
		}
	}

	name := strings.Join(tokens, " ")
	if name == strings.ToUpper(name) {
		name = cases.Title(language.English).String(name)
	}
	return name, true
}

func (e *FieldExtractor) extractPhone(text string) string {
	best, bestStart := "", -1
	for _, re := range e.phone {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		candidate := strings.TrimSpace(text[start:end])
		if bestStart == -1 || start < bestStart || (start == bestStart && len(candidate) > len(best)) {
			best, bestStart = candidate, start
		}
	}
	return best
}

func (e *FieldExtractor) extractEducation(text string) models.Education {
	var (
		found    bool
		level    models.EducationLevel
		position int
		end      int
	)

	for _, rule := range degreeRules {
		loc := rule.find(text)
		if loc == nil {
			continue
		}
		if !found || rule.level > level || (rule.level == level && loc[2] < position) {
			found, level, position, end = true, rule.level, loc[2], loc[3]
		}
	}

	if !found {
		return models.Education{Level: models.EducationUnspecified}
	}

	rest := text[end:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return models.Education{Level: level, Field: fieldOfStudy(rest)}
}

func fieldOfStudy(rest string) string {
	rest = reFieldLead.ReplaceAllString(rest, "")
	if loc := reFieldCut.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	phrase := strings.TrimSpace(reFieldPhrase.FindString(rest))
	if phrase == "" {
		return ""
	}

	words := strings.Fields(phrase)
	if len(words) > 6 {
		words = words[:6]
	}
	for _, rule := range degreeRules {
		if rule.matches(words[0]) {
			return ""
		}
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func (e *FieldExtractor) extractExperience(text string) float64 {
	best := 0.0

	for _, m := range reExplicitYears.FindAllStringSubmatch(text, -1) {
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil || years > maxExplicitYears {
			continue
		}
		best = math.Max(best, years)
	}

	best = math.Max(best, e.inferredYears(experienceSection(text)))
	return math.Round(best*10) / 10
}

func experienceSection(text string) string {
	var (
		b      strings.Builder
		inside bool
	)
	for _, line := range strings.Split(text, "\n") {
		header := strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ": ")
		switch {
		case experienceHeaders[header]:
			inside = true
			continue
		case otherHeaders[header]:
			inside = false
			continue
		}
		if inside {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type monthSpan struct{ start, end int }

// inferredYears measures the union of all plausible date ranges in months.
func (e *FieldExtractor) inferredYears(section string) float64 {
	if section == "" {
		return 0
	}

	// Spans are half-open month ranges. "Present" runs through the
	// reference month.
	limit := e.reference.Year()*12 + int(e.reference.Month())

	var spans []monthSpan
	for _, m := range reDateRange.FindAllStringSubmatch(section, -1) {
		startYear, _ := strconv.Atoi(m[3])
		if startYear < earliestCareerYear {
			continue
		}
		start := startYear*12 + monthOf(m[1], m[2])

		var end int
		if m[7] != "" {
			end = limit
		} else {
			endYear, _ := strconv.Atoi(m[6])
			end = endYear*12 + monthOf(m[4], m[5])
			// "Jan 2018 - Dec 2018" includes December.
			if m[4] != "" || m[5] != "" {
				end++
			}
		}

		if end < start || end > limit {
			continue
		}
		spans = append(spans, monthSpan{start, end})
	}

	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	total += cur.end - cur.start

	return float64(total) / 12
}

// monthOf returns a zero-based month, January when unknown.
func monthOf(name, number string) int {
	if name != "" {
		if m, ok := monthIndex[strings.ToLower(name)[:3]]; ok {
			return m - 1
		}
	}
	if number != "" {
		if m, err := strconv.Atoi(number); err == nil && m >= 1 && m <= 12 {
			return m - 1
		}
	}
	return 0
}

func (e *FieldExtractor) extractSkills(lower string) []string {
	skills := make([]string, 0)
	if lower == "" {
		return skills
	}
	for _, s := range e.skills {
		for _, re := range s.patterns {
			if re.MatchString(lower) {
				skills = append(skills, s.name)
				break
			}
		}
	}
	return skills
}
