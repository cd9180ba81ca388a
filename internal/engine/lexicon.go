package engine

import "sort"

// Lexicon holds the static dictionaries the classifier and scorer work
// from. A Lexicon is built once at startup and never mutated afterwards;
// deployments can extend the defaults through configuration.
type Lexicon struct {
	// Filler are stopwords removed when extracting meaningful terms.
	// They stay in the full term set for phrase comparisons.
	Filler map[string]bool
	// Action are terms implying the user wants a specific fact (fees,
	// schedule, contact) rather than a general explanation.
	Action map[string]bool
	// Critical are ordinal/position markers that must match exactly
	// between query and candidate when both carry one.
	Critical map[string]bool
	// CommonSingle are terms too generic to match on alone; a query made
	// up only of these is treated as vague.
	CommonSingle map[string]bool
	// KnownCourses and KnownTopics are literal entity phrases, kept
	// sorted longest-first so the longest literal wins substring lookup.
	KnownCourses []string
	KnownTopics  []string
}

// NewSet builds a membership set from a word list.
func NewSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var defaultFiller = []string{
	"what", "is", "the", "of", "for", "a", "an", "in", "to", "and", "or",
	"how", "much", "many", "show", "me", "tell", "please", "can", "you",
	"about", "explain", "give", "details", "year", "sem", "are", "do",
	"does", "my", "there", "any", "with", "at", "on", "i", "want", "know",
}

var defaultAction = []string{
	"fee", "fees", "cost", "price", "admission", "admissions", "exam",
	"exams", "schedule", "timetable", "date", "dates", "contact", "phone",
	"number", "email", "address", "hostel", "placement", "placements",
	"syllabus", "subjects", "eligibility", "documents", "apply",
	"application", "registration", "scholarship", "result", "results",
	"attendance", "library", "transport", "bus", "uniform", "holiday",
	"holidays", "duration", "seats", "faculty", "timing", "timings",
}

var defaultCritical = []string{
	"1st", "2nd", "3rd", "4th", "5th", "6th",
	"first", "second", "third", "fourth", "fifth", "sixth",
	"ii", "iii", "iv", "vi",
	"semester", "semesters",
}

var defaultCommonSingle = []string{
	"fee", "fees", "exam", "exams", "result", "results", "admission",
	"course", "courses", "hostel", "contact", "syllabus", "placement",
}

var defaultCourses = []string{
	"bachelor of computer applications",
	"master of computer applications",
	"bachelor of business administration",
	"master of business administration",
	"computer science engineering",
	"information technology",
	"computer science",
	"mechanical engineering",
	"civil engineering",
	"bca", "mca", "bba", "mba", "bcom", "mcom", "btech", "mtech", "bsc", "msc",
}

var defaultTopics = []string{
	"database management system",
	"artificial intelligence",
	"software engineering",
	"operating system",
	"computer networks",
	"machine learning",
	"cloud computing",
	"data structures",
	"web development",
	"cyber security",
	"dbms", "oops", "python", "java", "networking",
}

// DefaultLexicon returns the built-in dictionaries. Extra words from
// configuration are merged on top of the defaults.
func DefaultLexicon() Lexicon {
	lex := Lexicon{
		Filler:       NewSet(defaultFiller),
		Action:       NewSet(defaultAction),
		Critical:     NewSet(defaultCritical),
		CommonSingle: NewSet(defaultCommonSingle),
		KnownCourses: append([]string(nil), defaultCourses...),
		KnownTopics:  append([]string(nil), defaultTopics...),
	}
	sortLongestFirst(lex.KnownCourses)
	sortLongestFirst(lex.KnownTopics)
	return lex
}

// Extend returns a copy of the lexicon with additional words merged into
// each dictionary. The receiver is not modified.
func (l Lexicon) Extend(filler, action, critical, courses, topics []string) Lexicon {
	out := Lexicon{
		Filler:       mergeSet(l.Filler, filler),
		Action:       mergeSet(l.Action, action),
		Critical:     mergeSet(l.Critical, critical),
		CommonSingle: mergeSet(l.CommonSingle, nil),
		KnownCourses: append(append([]string(nil), l.KnownCourses...), courses...),
		KnownTopics:  append(append([]string(nil), l.KnownTopics...), topics...),
	}
	sortLongestFirst(out.KnownCourses)
	sortLongestFirst(out.KnownTopics)
	return out
}

func mergeSet(base map[string]bool, extra []string) map[string]bool {
	out := make(map[string]bool, len(base)+len(extra))
	for w := range base {
		out[w] = true
	}
	for _, w := range extra {
		out[Normalize(w)] = true
	}
	return out
}

func sortLongestFirst(phrases []string) {
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i]) > len(phrases[j])
	})
}
