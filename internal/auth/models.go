package auth

// TokenPair is the response to a successful authentication or refresh.
// Stateless: nothing is tracked server-side once it is handed out.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"` // always "Bearer"
	ExpiresIn    int64  `json:"expires_in"` // access token validity in seconds
	RefreshToken string `json:"refresh_token"`
}
