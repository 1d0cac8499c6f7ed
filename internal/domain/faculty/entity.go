package faculty

// Faculty is an academic unit offering courses
type Faculty struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
