package objects

// create object request payload
type CreateObjectRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,contains=@"`
	Age   *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
}

// partial update payload, shared by PUT and PATCH
type UpdateObjectRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,contains=@"`
	Age   *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
}

// list query parameters
type ObjectQuery struct {
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
	Name   string `form:"name"`
}
