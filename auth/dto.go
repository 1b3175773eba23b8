// Request and response payloads for the auth endpoints.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,max=120" example:"Ada Lovelace"`
	Username string  `json:"username" validate:"required,min=2,max=40" example:"ada"`
	Password string  `json:"password" validate:"required,min=6,max=72" example:"strongpassword123"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url" example:"https://example.com/ada.png"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"ada"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// TokenResponse carries the token pair returned on login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64  `json:"expiresIn" example:"3600"`
}

// LoginResponse pairs the authenticated user with their tokens.
type LoginResponse struct {
	User   *User          `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}

// RefreshTokenRequest represents the token refresh request payload.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
