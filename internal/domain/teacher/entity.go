package teacher

// Teacher is a course instructor
type Teacher struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Email         string `json:"email,omitempty"`
	ResearchField string `json:"research_field,omitempty"`
	Achievements  string `json:"achievements,omitempty"`
	FacultyID     int64  `json:"faculty_id"`
}
