package domain

// User is one registered local account in the user directory. Emails are
// unique across the directory.
type User struct {
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never returned in JSON
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider"` // "local" or "google"
}

// Session is the singleton active-login record for a visitor. Its presence
// means the visitor is logged in; its absence means anonymous.
type Session struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider"`
}

// PKCESession is the transient verifier/state pair held for the duration of
// one Google login attempt. It is consumed on the callback, success or not.
type PKCESession struct {
	Verifier string `json:"verifier"`
	State    string `json:"state"`
}
