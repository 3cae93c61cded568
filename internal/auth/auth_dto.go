package auth

type SignupRequest struct {
	Username        string `json:"username" binding:"required,max=100"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Organization    string `json:"organization" binding:"required,max=255"`
}

type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Organization string `json:"organization" binding:"required"`
}

type AuthResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Organization string `json:"organization"`
}
