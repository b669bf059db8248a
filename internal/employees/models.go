package employees

// Employee is a store worker tasks can be assigned to
type Employee struct {
	ID         int     `json:"id" gorm:"primaryKey;autoIncrement"`
	ExternalID *string `json:"external_id" gorm:"index"`
	FirstName  string  `json:"first_name" gorm:"not null"`
	LastName   string  `json:"last_name" gorm:"not null;index:idx_employees_name"`
	StoreID    int     `json:"store_id" gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// list query parameters
type EmployeeQuery struct {
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
	StoreID   *int   `form:"store_id"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

// paginated listing payload
type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
	Total     int64      `json:"total"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
}
