package models

// AdminLoginRequest carries the shared admin password
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse is returned on successful login. The token is also set
// as an HTTP-only cookie; it is echoed here for non-browser clients.
type AdminLoginResponse struct {
	User  string `json:"user"`
	Token string `json:"token"`
}

// AdminSessionInfo is the identity payload returned by the session check endpoint
type AdminSessionInfo struct {
	User string `json:"user"`
}
