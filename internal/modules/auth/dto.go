package auth

type LoginRequest struct {
	PID      int64  `json:"pid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
