package dto

// CreateUserRequest payload for signup.
type CreateUserRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// CreateUserResponse returned on successful signup.
type CreateUserResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse is the generic single-message body.
type MessageResponse struct {
	Message string `json:"message"`
}
