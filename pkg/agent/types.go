package agent

import (
	"context"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
)

// IntentType classifies what the user is trying to do in one turn
type IntentType string

const (
	IntentNewQuery   IntentType = "NEW_QUERY"
	IntentRefine     IntentType = "REFINE"
	IntentSupplement IntentType = "SUPPLEMENT"
	IntentCompare    IntentType = "COMPARE"
	IntentDetail     IntentType = "DETAIL"
	IntentChat       IntentType = "CHAT"
)

// ParseIntentType maps a raw classifier string to a known intent type.
// Unknown values fall back to NEW_QUERY so a confused model never
// breaks the pipeline.
func ParseIntentType(s string) IntentType {
	switch IntentType(s) {
	case IntentNewQuery, IntentRefine, IntentSupplement, IntentCompare, IntentDetail, IntentChat:
		return IntentType(s)
	default:
		return IntentNewQuery
	}
}

// Params holds the structured filter slots extracted from the
// conversation. Zero values mean "not constrained".
type Params struct {
	Faculty    string
	Teacher    string
	CourseType string
	Difficulty string
	Credits    *float64
	DayOfWeek  []int
	TimePeriod *int
}

// IsEmpty reports whether no slot carries a value
func (p Params) IsEmpty() bool {
	return p.Faculty == "" && p.Teacher == "" && p.CourseType == "" &&
		p.Difficulty == "" && p.Credits == nil && len(p.DayOfWeek) == 0 &&
		p.TimePeriod == nil
}

// Merge overlays override on top of p. Slots set in override win;
// dayOfWeek is replaced wholesale, never unioned, so "周五呢" does not
// drag along last turn's weekday.
func (p Params) Merge(override Params) Params {
	merged := p
	if override.Faculty != "" {
		merged.Faculty = override.Faculty
	}
	if override.Teacher != "" {
		merged.Teacher = override.Teacher
	}
	if override.CourseType != "" {
		merged.CourseType = override.CourseType
	}
	if override.Difficulty != "" {
		merged.Difficulty = override.Difficulty
	}
	if override.Credits != nil {
		merged.Credits = override.Credits
	}
	if len(override.DayOfWeek) > 0 {
		merged.DayOfWeek = override.DayOfWeek
	}
	if override.TimePeriod != nil {
		merged.TimePeriod = override.TimePeriod
	}
	return merged
}

// ParamsFromMap hydrates Params from an untyped slot map, dropping
// anything malformed or out of range rather than failing.
func ParamsFromMap(m map[string]interface{}) Params {
	if m == nil {
		return Params{}
	}
	p := Params{
		Faculty:    stringSlot(m["faculty"]),
		Teacher:    stringSlot(m["teacher"]),
		CourseType: stringSlot(m["courseType"]),
		Difficulty: stringSlot(m["difficulty"]),
	}
	if c, ok := floatSlot(m["credits"]); ok {
		p.Credits = &c
	}
	p.DayOfWeek = daysSlot(m["dayOfWeek"])
	if tp, ok := intSlot(m["timePeriod"]); ok && tp >= 1 && tp <= 4 {
		p.TimePeriod = &tp
	}
	return p
}

// ToMap serializes only the slots that carry values
func (p Params) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	if p.Faculty != "" {
		m["faculty"] = p.Faculty
	}
	if p.Teacher != "" {
		m["teacher"] = p.Teacher
	}
	if p.CourseType != "" {
		m["courseType"] = p.CourseType
	}
	if p.Difficulty != "" {
		m["difficulty"] = p.Difficulty
	}
	if p.Credits != nil {
		m["credits"] = *p.Credits
	}
	if len(p.DayOfWeek) > 0 {
		days := make([]interface{}, len(p.DayOfWeek))
		for i, d := range p.DayOfWeek {
			days[i] = d
		}
		m["dayOfWeek"] = days
	}
	if p.TimePeriod != nil {
		m["timePeriod"] = *p.TimePeriod
	}
	return m
}

// Intent is the classifier's structured reading of one user message
type Intent struct {
	Type                IntentType
	Params              Params
	Keywords            []string
	CoursesToCompare    []string
	CourseToQuery       string
	Confidence          float64
	OriginalMessage     string
	ReferenceLastResult bool
}

// CourseInfo is the recommendation-facing projection of a course.
// JSON tags match the wire shape the frontend consumes and the shape
// stored under lastRecommendedCourses in the conversation context.
type CourseInfo struct {
	ID            int64    `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       float64  `json:"credits"`
	Type          string   `json:"courseType"`
	Description   string   `json:"description,omitempty"`
	FacultyName   string   `json:"facultyName,omitempty"`
	TeacherName   string   `json:"teacherName,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	ReviewCount   int      `json:"reviewCount"`
	Reason        string   `json:"reason,omitempty"`
}

// Rating returns the average rating or 0 when unrated
func (c CourseInfo) Rating() float64 {
	if c.AverageRating == nil {
		return 0
	}
	return *c.AverageRating
}

// AgentResult is what one handler produces for one turn
type AgentResult struct {
	IntentType       IntentType
	Success          bool
	Courses          []CourseInfo
	Message          string
	ComparisonResult string
	CourseDetail     *CourseInfo
	UpdatedContext   map[string]interface{}
}

// ReviewExcerpt is a short piece of student feedback used in detail prompts
type ReviewExcerpt struct {
	Content string
	Rating  int
}

// Handler processes one classified turn
type Handler interface {
	Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error)
}

// Catalog supplies courses to the recommendation pipeline
type Catalog interface {
	// FindAll returns every visible course with rating aggregates attached
	FindAll(ctx context.Context) ([]CourseInfo, error)
	// FindScheduled returns the set of course IDs that have a session on
	// the given day of week (1-7). dayOfWeek 0 matches any day and
	// timePeriod 0 matches any period.
	FindScheduled(ctx context.Context, dayOfWeek, timePeriod int) (map[int64]bool, error)
}

// ReviewSource supplies review excerpts for detail narratives
type ReviewSource interface {
	RecentReviews(ctx context.Context, courseID int64, limit int) ([]ReviewExcerpt, error)
}

// Completer is the LLM dependency of the pipeline. Every call site
// treats a failure as a signal to fall back, never as a fatal error.
type Completer interface {
	Complete(ctx context.Context, req deepseek.CompletionRequest) (string, error)
	Available() bool
}

func stringSlot(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func floatSlot(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func intSlot(v interface{}) (int, bool) {
	f, ok := floatSlot(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// daysSlot normalizes a scalar or list day value into a clean 1-7 list
func daysSlot(v interface{}) []int {
	var raw []interface{}
	switch t := v.(type) {
	case nil:
		return nil
	case []interface{}:
		raw = t
	case []int:
		out := make([]int, 0, len(t))
		for _, d := range t {
			if d >= 1 && d <= 7 {
				out = append(out, d)
			}
		}
		return out
	default:
		raw = []interface{}{v}
	}
	var out []int
	for _, item := range raw {
		if d, ok := intSlot(item); ok && d >= 1 && d <= 7 {
			out = append(out, d)
		}
	}
	return out
}
