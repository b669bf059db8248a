package tasks

// create task request payload
type CreateTaskRequest struct {
	Title         string         `json:"title" validate:"required"`
	Description   *string        `json:"description"`
	PriorityLevel *PriorityLevel `json:"priority_level"`
	Status        *TaskStatus    `json:"status"`
	AssignedTo    *int           `json:"assigned_to" validate:"omitempty,gt=0"`
}

// partial update payload, shared by PUT and PATCH
type UpdateTaskRequest struct {
	Title         *string        `json:"title" validate:"omitempty,min=1"`
	Description   *string        `json:"description"`
	PriorityLevel *PriorityLevel `json:"priority_level"`
	Status        *TaskStatus    `json:"status"`
	AssignedTo    *int           `json:"assigned_to" validate:"omitempty,gt=0"`
}

// list query parameters
type TaskQuery struct {
	Limit         int            `form:"limit"`
	Offset        int            `form:"offset"`
	Title         string         `form:"title"`
	Status        *TaskStatus    `form:"status"`
	PriorityLevel *PriorityLevel `form:"priority_level"`
	AssignedTo    *int           `form:"assigned_to"`
	SortBy        string         `form:"sort_by"`
	SortDirection string         `form:"sort_direction"`
}
