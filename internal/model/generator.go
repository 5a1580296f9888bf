package model

// GenerateRequest represents a one-shot password generation request.
// Pointer fields distinguish a missing value (nil -> form default) from an explicit one.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password  string   `json:"password"`
	Passwords []string `json:"passwords,omitempty"`
	Length    int      `json:"length"`
	PoolSize  int      `json:"pool_size"`
}
