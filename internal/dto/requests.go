package dto

// SignUpRequest — тело POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest — тело POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest используется в /api/auth/refresh и /api/auth/signout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LanguageRequest — тело PUT /api/language.
type LanguageRequest struct {
	Lang string `json:"lang" binding:"required"`
}
