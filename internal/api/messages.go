package api

import "time"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

// Todo is the wire form of a todo item.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListTodosRequest struct{}

type ListTodosResponse struct {
	Todos []*Todo `json:"todos"`
}

// TodoIDRequest addresses a single todo (get, delete, toggle).
type TodoIDRequest struct {
	ID string `json:"id"`
}

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed,omitempty"`
}

// UpdateTodoRequest is a partial update. Nil fields are left untouched;
// ClearDescription sets the description to null and wins over Description.
type UpdateTodoRequest struct {
	ID               string  `json:"id"`
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	ClearDescription bool    `json:"clear_description,omitempty"`
	Completed        *bool   `json:"completed,omitempty"`
}

type DeleteTodoResponse struct {
	Deleted bool `json:"deleted"`
}
