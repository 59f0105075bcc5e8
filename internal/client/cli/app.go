package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	authService services.AuthService
	todoService services.TodoService
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
	render      *renderer

	mu    sync.RWMutex
	email string
	mode  Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, repos, err := client.InitDatabase(ctx, c.SessionFile)
	if err != nil {
		log.Printf("error initializing session store: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewTodoKeeperClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, repos.Session, c.RequestTimeout)
	ts := services.NewTodoService(apiClient, c.RequestTimeout)

	return &App{
		config:      c,
		authService: as,
		todoService: ts,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		render:      newRenderer(c.NoColor),
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setEmail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.email = email
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.email != ""
}

// getStatus renders the prompt suffix, e.g. "(alice@example.com online)".
func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	s += string(a.mode)
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// Run restores a saved session, starts the connectivity watcher and runs
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		_ = a.authService.Close(ctx)
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	log.Println("Welcome to todokeeper CLI (type 'help' for commands)")

	if s, err := a.authService.Restore(ctx); err != nil {
		log.Printf("could not restore session: %s", err.Error())
	} else if s != nil {
		a.setEmail(s.Email)
		log.Printf("Restored session for %s", s.Email)
	}

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
