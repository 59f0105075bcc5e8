package models

import "time"

// Todo is a task owned by exactly one user.
type Todo struct {
	ID          string
	Title       string
	Description *string
	Completed   bool
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTodo carries the caller-controlled fields of a todo being created.
// The owner is never part of it.
type NewTodo struct {
	Title       string
	Description *string
	Completed   bool
}

// TodoPatch is a partial update. Only fields with Set == true are applied.
type TodoPatch struct {
	Title       Optional[string]
	Description Optional[*string]
	Completed   Optional[bool]
}

// Empty reports whether the patch changes nothing.
func (p TodoPatch) Empty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Completed.Set
}

// Apply copies the set fields of p onto t.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title.Set {
		t.Title = p.Title.Value
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.Completed.Set {
		t.Completed = p.Completed.Value
	}
}
