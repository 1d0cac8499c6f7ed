package agent

import (
	"context"
	"math"
	"sort"
	"strings"
)

const creditTolerance = 0.5

// matchesParams applies the structured slot predicate to one course.
// scheduled is the pre-fetched schedule ID set; nil means no schedule
// constraint was requested.
func matchesParams(c CourseInfo, p Params, scheduled map[int64]bool) bool {
	if p.Faculty != "" && !substringEither(c.FacultyName, p.Faculty) {
		return false
	}
	if p.Teacher != "" && !substringEither(c.TeacherName, p.Teacher) {
		return false
	}
	if p.CourseType != "" && c.Type != p.CourseType {
		return false
	}
	if p.Credits != nil && math.Abs(c.Credits-*p.Credits) > creditTolerance {
		return false
	}
	if scheduled != nil && !scheduled[c.ID] {
		return false
	}
	return true
}

// substringEither matches when either string contains the other, so
// "创新工程" matches "创新工程学院" and vice versa. Comparison is
// case-sensitive, as stored in the catalog.
func substringEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchesKeywords reports whether any keyword appears in the course's
// name or description.
func matchesKeywords(c CourseInfo, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	haystack := strings.ToLower(c.Name + " " + c.Description)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// scheduleSet resolves the dayOfWeek/timePeriod slots into a course ID
// set. Returns nil when no schedule constraint is present. Multiple
// days are unioned; the period applies to each day. A period with no
// day constrains on its own, via the day-0 wildcard.
func scheduleSet(ctx context.Context, catalog Catalog, p Params) (map[int64]bool, error) {
	period := 0
	if p.TimePeriod != nil {
		period = *p.TimePeriod
	}
	if len(p.DayOfWeek) == 0 {
		if period == 0 {
			return nil, nil
		}
		return catalog.FindScheduled(ctx, 0, period)
	}
	union := map[int64]bool{}
	for _, day := range p.DayOfWeek {
		ids, err := catalog.FindScheduled(ctx, day, period)
		if err != nil {
			return nil, err
		}
		for id := range ids {
			union[id] = true
		}
	}
	return union, nil
}

// selectCourses picks the candidate set for a query. With structured
// slots present the structured filter runs first and keywords rescue an
// empty result; with no slots at all the keywords drive the scan
// directly, and only when they are absent or match nothing does the
// whole catalog stand in.
func selectCourses(ctx context.Context, catalog Catalog, all []CourseInfo, p Params, keywords []string) ([]CourseInfo, error) {
	if !p.IsEmpty() {
		scheduled, err := scheduleSet(ctx, catalog, p)
		if err != nil {
			return nil, err
		}
		matched := filterCourses(all, p, scheduled)
		if len(matched) == 0 && len(keywords) > 0 {
			matched = filterByKeywords(all, keywords)
		}
		return matched, nil
	}
	if len(keywords) > 0 {
		if matched := filterByKeywords(all, keywords); len(matched) > 0 {
			return matched, nil
		}
	}
	return all, nil
}

// filterCourses applies the structured predicate over the given scope
func filterCourses(courses []CourseInfo, p Params, scheduled map[int64]bool) []CourseInfo {
	var out []CourseInfo
	for _, c := range courses {
		if matchesParams(c, p, scheduled) {
			out = append(out, c)
		}
	}
	return out
}

// filterByKeywords keeps only courses matching at least one keyword
func filterByKeywords(courses []CourseInfo, keywords []string) []CourseInfo {
	var out []CourseInfo
	for _, c := range courses {
		if matchesKeywords(c, keywords) {
			out = append(out, c)
		}
	}
	return out
}

// rankCourses orders courses keyword-matches-first, then by rating
// descending. The sort is stable so catalog order breaks remaining ties.
func rankCourses(courses []CourseInfo, keywords []string) {
	sort.SliceStable(courses, func(i, j int) bool {
		mi, mj := matchesKeywords(courses[i], keywords), matchesKeywords(courses[j], keywords)
		if mi != mj {
			return mi
		}
		return courses[i].Rating() > courses[j].Rating()
	})
}

// topCourses truncates to the recommendation cap
func topCourses(courses []CourseInfo) []CourseInfo {
	if len(courses) > maxRecommendations {
		return courses[:maxRecommendations]
	}
	return courses
}
