package client

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Login authenticates the user and returns the issued bearer token together
// with the user summary.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	reqBody := LoginRequest{
		Email:    email,
		Password: password,
	}

	var loginResp LoginResponse
	if err := c.do("POST", "/auth/login", "", reqBody, &loginResp); err != nil {
		return nil, err
	}
	return &loginResp, nil
}

// SessionCheck represents the check-session response
type SessionCheck struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// CheckSession asks the backend whether the token still identifies a live
// session. A rejected or expired token comes back as *APIError.
func (c *Client) CheckSession(token string) (*SessionCheck, error) {
	var check SessionCheck
	if err := c.do("GET", "/auth/check-session", token, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// RegisterRequest represents the account registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse represents the registration response
type RegisterResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// Register creates a new customer account.
func (c *Client) Register(req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do("POST", "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
