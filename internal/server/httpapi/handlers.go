package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// updateTodoRequest keeps absent fields apart from fields sent as null.
type updateTodoRequest struct {
	Title       models.Optional[string]  `json:"title"`
	Description models.Optional[*string] `json:"description"`
	Completed   models.Optional[bool]    `json:"completed"`
}

func toTodoResponse(t *models.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo API is running!"})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decodeBody(w, r, &in) {
		return
	}

	user, err := s.users.Signup(r.Context(), in.Email, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Signed up", "user_id", user.ID)
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt})
}

func (s *HTTPServer) handleSignin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decodeBody(w, r, &in) {
		return
	}

	res, err := s.users.Signin(r.Context(), in.Email, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: res.AccessToken, TokenType: res.TokenType, UserID: res.UserID})
}

func (s *HTTPServer) handleListTodos(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	todos, err := s.todos.List(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var in createTodoRequest
	if !decodeBody(w, r, &in) {
		return
	}

	todo, err := s.todos.Create(r.Context(), user.ID, models.NewTodo{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (s *HTTPServer) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	todo, err := s.todos.Get(r.Context(), chi.URLParam(r, "todo_id"), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (s *HTTPServer) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var in updateTodoRequest
	if !decodeBody(w, r, &in) {
		return
	}

	patch := models.TodoPatch{Title: in.Title, Description: in.Description, Completed: in.Completed}
	todo, err := s.todos.Update(r.Context(), chi.URLParam(r, "todo_id"), user.ID, patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (s *HTTPServer) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	deleted, err := s.todos.Delete(r.Context(), chi.URLParam(r, "todo_id"), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !deleted {
		writeDetail(w, http.StatusNotFound, "Todo not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}

func (s *HTTPServer) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	todo, err := s.todos.Toggle(r.Context(), chi.URLParam(r, "todo_id"), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(todo))
}
