package objects

// paginated listing payload
type ObjectListResponse struct {
	Objects []Object `json:"objects"`
	Total   int64    `json:"total"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

// profile view of a single object
type ObjectProfileResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        *int   `json:"age"`
	ProfileURL string `json:"profile_url"`
	CreatedAt  string `json:"created_at"`
}

// aggregate statistics payload
type ObjectStatsResponse struct {
	TotalObjects   int64   `json:"total_objects"`
	ObjectsWithAge int64   `json:"objects_with_age"`
	AverageAge     float64 `json:"average_age"`
}
