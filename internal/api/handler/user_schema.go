package handler

// --- Request / Response types ---

type listUsersRequest struct {
	Page     int `query:"page"     validate:"omitempty,gte=1"`
	PageSize int `query:"pageSize" validate:"omitempty,gte=1"`
}

type createUserRequest struct {
	FirstName             string   `json:"first_name"              validate:"required,alpha"`
	LastName              string   `json:"last_name"               validate:"required,alpha"`
	Email                 string   `json:"email"                   validate:"required,email"`
	Password              string   `json:"password"                validate:"required,min=6"`
	ConfirmPassword       string   `json:"confirm_password"        validate:"required,eqfield=Password"`
	Role                  string   `json:"role"                    validate:"required,rolename"`
	PreferredWorkingHours *float64 `json:"preferred_working_hours" validate:"omitempty,gte=0,lte=24"`
}

type updateUserRequest struct {
	FirstName             *string  `json:"first_name"              validate:"omitempty,alpha"`
	LastName              *string  `json:"last_name"               validate:"omitempty,alpha"`
	Email                 *string  `json:"email"                   validate:"omitempty,email"`
	Role                  *string  `json:"role"                    validate:"omitempty,rolename"`
	PreferredWorkingHours *float64 `json:"preferred_working_hours" validate:"omitempty,gte=0,lte=24"`
}

type setPasswordRequest struct {
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type paginationResponse struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page,omitempty"`
	PageSize int   `json:"page_size,omitempty"`
}

type listUsersResponse struct {
	Data       []*userResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type deletedResponse struct {
	ID string `json:"id"`
}
