package view

type LoginForm struct {
	Email string `json:"email"`
}

type LoginPage struct {
	Form      LoginForm         `json:"form"`
	Errors    map[string]string `json:"errors,omitempty"`
	PageError string            `json:"page_error,omitempty"`
	ReturnTo  string            `json:"return_to,omitempty"`
	Flash     *Flash            `json:"flash,omitempty"`
}

type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RegisterPage struct {
	Form      RegisterForm      `json:"form"`
	Errors    map[string]string `json:"errors,omitempty"`
	PageError string            `json:"page_error,omitempty"`
	Flash     *Flash            `json:"flash,omitempty"`
}
