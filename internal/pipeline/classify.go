// =============================================================================
// classify.go - keyword-based categorization and tagging
// =============================================================================
//
// Category assignment scans a fixed, ordered list of (label, keywords)
// groups and returns the label of the first group with a match. The group
// order is a deliberate tie-break and must not be reordered: text matching
// both politics and economy keywords is always "politics".
//
// Matching is plain substring containment, case-sensitive, over the Korean
// keyword lists of this deployment.
//
// =============================================================================
package pipeline

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// CategoryGeneral is assigned when no keyword group matches.
const CategoryGeneral = "general"

type keywordGroup struct {
	label    string
	keywords []string
}

// categoryGroups is evaluated in order; earlier groups win.
var categoryGroups = []keywordGroup{
	{"politics", []string{"정치", "대통령", "국회", "총선", "장관", "여당", "야당", "청와대", "외교", "안보", "북한"}},
	{"economy", []string{"경제", "증시", "코스피", "환율", "금리", "물가", "수출", "무역", "부동산", "채권", "원달러"}},
	{"society", []string{"사회", "사건", "사고", "치안", "노동", "교육", "복지", "보건", "의료", "법원", "검찰"}},
	{"culture", []string{"문화", "영화", "음악", "공연", "전시", "문학", "예술", "드라마", "방송", "연예"}},
	{"it_science", []string{"IT", "과학", "AI", "인공지능", "반도체", "스타트업", "클라우드", "보안", "게임", "통신", "소프트웨어"}},
	{"sports", []string{"스포츠", "축구", "야구", "농구", "배구", "골프", "올림픽", "대표팀", "K리그", "KBO", "NBA"}},
}

// tagRules maps descriptive tags to the keywords that trigger them.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"breaking", []string{"속보", "단독", "긴급"}},
	{"analysis", []string{"해설", "분석", "심층"}},
	{"opinion", []string{"사설", "칼럼", "오피니언"}},
}

// shortTitleMax is the title length (in runes) at or below which the
// short_title tag is added.
const shortTitleMax = 25

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// guessCategory assigns a topic label from title+summary. A source-level
// override always wins and is returned unmodified, without validation
// against the closed label set.
func guessCategory(title, summary, override string) string {
	if override != "" {
		return override
	}
	text := title + " " + summary
	for _, g := range categoryGroups {
		if containsAny(text, g.keywords) {
			return g.label
		}
	}
	return CategoryGeneral
}

// makeTags derives the item's tag set from title and summary. The result is
// sorted lexicographically and duplicate-free so output is deterministic.
func makeTags(title, summary string) []string {
	matched := map[string]bool{}
	text := title + " " + summary
	for _, r := range tagRules {
		if containsAny(text, r.keywords) {
			matched[r.tag] = true
		}
	}
	if utf8.RuneCountInString(title) <= shortTitleMax {
		matched["short_title"] = true
	}

	tags := make([]string, 0, len(matched))
	for t := range matched {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
