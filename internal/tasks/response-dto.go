package tasks

// paginated listing payload
type TaskListResponse struct {
	Tasks  []Task `json:"tasks"`
	Total  int64  `json:"total"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}
