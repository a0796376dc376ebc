package dto

// TokenLoginRequest is the POST /token/login payload.
type TokenLoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenLoginResponse carries the issued token and its expiry as "YYYY-MM-DD HH:MM:SS".
type TokenLoginResponse struct {
	Token     string `json:"token"`
	ExpiredAt string `json:"expired_at"`
}

// StudentLoginRequest is the POST /auth/login payload; Username is the student's NIM.
type StudentLoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=3,max=100"`
}

// StudentLoginResponse identifies the student whose credentials matched.
type StudentLoginResponse struct {
	StudentID      int64   `json:"Student_Id"`
	Nim            string  `json:"Nim"`
	FullName       string  `json:"Full_Name"`
	RegisterNumber *string `json:"Register_Number"`
}

// ProfileResponse describes the API client behind the current token.
type ProfileResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Name      *string `json:"name"`
	TokenID   int64   `json:"token_id"`
	ExpiresAt *string `json:"expires_at"`
}
