package dto

// SignupReq represents the request body for the signup endpoint.
// Pattern-level rules (name alphabet, password complexity) are enforced in
// the usecase; binding tags only cover presence and email format.
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned on successful signup.
type SignupResponse struct {
	InsertedID string `json:"insertedId"`
}
