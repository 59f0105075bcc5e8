package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
)

// todoID takes the id from args or asks for it.
func (a *App) todoID(args []string, action string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, fmt.Sprintf("Enter todo id to %s", action), a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%w: id is required", client.ErrInvalidArgument)
	}
	return id, nil
}

func (a *App) List(ctx context.Context) error {
	todos, err := a.todoService.List(ctx)
	if err != nil {
		return err
	}
	return a.render.table(a.out, todos)
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.todoID(args, "show")
	if err != nil {
		return err
	}
	todo, err := a.todoService.Get(ctx, id)
	if err != nil {
		return err
	}
	a.render.details(a.out, todo)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	todo, err := a.todoService.Add(ctx, title, description)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", todo.ID)
	return nil
}

// Edit asks for each field in turn. An empty answer keeps the field;
// "-" as the description removes it.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.todoID(args, "edit")
	if err != nil {
		return err
	}

	var ch client.TodoChanges

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		ch.Title = &title
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep, - to clear)", a.out)
	if err != nil {
		return err
	}
	switch description {
	case "":
	case "-":
		ch.ClearDescription = true
	default:
		ch.Description = &description
	}

	completed, err := getSimpleText(a.reader, "Completed? [y/n, empty to keep]", a.out)
	if err != nil {
		return err
	}
	switch strings.ToLower(completed) {
	case "":
	case "y", "yes":
		v := true
		ch.Completed = &v
	case "n", "no":
		v := false
		ch.Completed = &v
	default:
		return fmt.Errorf("%w: answer y or n", client.ErrInvalidArgument)
	}

	todo, err := a.todoService.Edit(ctx, id, ch)
	if err != nil {
		return err
	}
	a.render.details(a.out, todo)
	return nil
}

func (a *App) Toggle(ctx context.Context, args []string) error {
	id, err := a.todoID(args, "toggle")
	if err != nil {
		return err
	}
	todo, err := a.todoService.Toggle(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is now %s\n", todo.ID, a.render.status(todo.Completed))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.todoID(args, "delete")
	if err != nil {
		return err
	}
	if err := a.todoService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}
