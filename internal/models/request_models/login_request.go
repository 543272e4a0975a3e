package request_models

// LoginRequest mirrors the front end's mock sign-in: any email is accepted.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"omitempty,max=50"`
	Language string `json:"language" binding:"omitempty,oneof=en vi"`
}
