package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	maxHistoryTurns    = 5
	maxHistoryTurnLen  = 80
	maxRecommendations = 5
)

// HistoryTurn is one message of the caller-supplied conversation history
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationContext is the cross-turn state the caller round-trips
// with every request. The pipeline itself is stateless; everything it
// remembers lives here.
type ConversationContext struct {
	ConversationID  string
	UserID          string
	LastRecommended []CourseInfo
	Params          Params
	History         []HistoryTurn
}

// ContextFromMap hydrates the context from the caller's untyped blob.
// Malformed entries are dropped, never rejected.
func ContextFromMap(m map[string]interface{}, history []HistoryTurn) ConversationContext {
	cc := ConversationContext{
		Params:  ParamsFromMap(m),
		History: history,
	}
	if m == nil {
		return cc
	}
	cc.ConversationID = stringSlot(m["conversationId"])
	cc.UserID = stringSlot(m["userId"])
	cc.LastRecommended = coursesFromValue(m["lastRecommendedCourses"])
	return cc
}

// ToMap serializes the context back into the caller-facing blob
func (cc ConversationContext) ToMap() map[string]interface{} {
	m := cc.Params.ToMap()
	if cc.ConversationID != "" {
		m["conversationId"] = cc.ConversationID
	}
	if cc.UserID != "" {
		m["userId"] = cc.UserID
	}
	if len(cc.LastRecommended) > 0 {
		m["lastRecommendedCourses"] = CoursesToValue(cc.LastRecommended)
	}
	return m
}

// HasLastRecommended reports whether a prior recommendation batch exists
func (cc ConversationContext) HasLastRecommended() bool {
	return len(cc.LastRecommended) > 0
}

// HistorySummary renders the tail of the conversation for LLM prompts:
// at most the last 5 turns, each truncated to 80 runes.
func (cc ConversationContext) HistorySummary() string {
	if len(cc.History) == 0 {
		return ""
	}
	turns := cc.History
	if len(turns) > maxHistoryTurns {
		turns = turns[len(turns)-maxHistoryTurns:]
	}
	var b strings.Builder
	for _, t := range turns {
		label := "用户"
		if t.Role != "user" {
			label = "AI"
		}
		content := []rune(t.Content)
		if len(content) > maxHistoryTurnLen {
			content = append(content[:maxHistoryTurnLen], []rune("...")...)
		}
		fmt.Fprintf(&b, "%s: %s\n", label, string(content))
	}
	return b.String()
}

// LastRecommendedNames returns the names of the prior batch, in order
func (cc ConversationContext) LastRecommendedNames() []string {
	names := make([]string, 0, len(cc.LastRecommended))
	for _, c := range cc.LastRecommended {
		names = append(names, c.Name)
	}
	return names
}

// CoursesToValue serializes courses into the generic map form stored
// under lastRecommendedCourses.
func CoursesToValue(courses []CourseInfo) []interface{} {
	if len(courses) > maxRecommendations {
		courses = courses[:maxRecommendations]
	}
	out := make([]interface{}, 0, len(courses))
	for _, c := range courses {
		raw, err := json.Marshal(c)
		if err != nil {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// coursesFromValue rebuilds CourseInfo values from the stored blob
func coursesFromValue(v interface{}) []CourseInfo {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []CourseInfo
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var c CourseInfo
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		if c.Name == "" {
			continue
		}
		out = append(out, c)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}
