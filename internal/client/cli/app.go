package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/navigation"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/users"
	"github.com/dmitrijs2005/userdesk/internal/client/resources"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/client/storage"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type App struct {
	log      logging.Logger
	session  *session.Controller
	users    *resources.Controller[models.User]
	userRepo users.Repository
	guard    navigation.Guard

	path   string
	reader *bufio.Reader
	out    io.Writer

	closers []func() error
}

// NewApp opens the session database and builds the controllers. The session
// restore starts immediately; Run waits for it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	hc, err := client.NewHTTPClient(cfg.ClientConfig(), log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init http client: %w", err)
	}

	repo := users.NewHTTPRepository(hc)
	sess := session.NewController(ctx, session.NewSQLiteStore(db), log)
	guard := navigation.Guard{LoginPath: cfg.LoginPath, HomePath: cfg.HomePath}

	a := newApp(sess, repo, guard, os.Stdin, os.Stdout, log)
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newApp(sess *session.Controller, repo users.Repository, guard navigation.Guard, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		log:      log,
		session:  sess,
		users:    resources.NewController[models.User](repo, log),
		userRepo: repo,
		guard:    guard,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run waits for the session restore, lands on the home route (or the login
// route, as the guard decides) and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	select {
	case <-a.session.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := a.session.RestoreErr(); err != nil {
		fmt.Fprintf(a.out, "could not restore session: %v\n", err)
	}

	r := newRenderer(a.out)
	defer a.session.Subscribe(r.session)()
	defer a.users.Subscribe(r.users)()

	fmt.Fprintln(a.out, "userdesk shell (type 'help' for commands)")
	a.navigate(a.guard.HomePath)

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

// Close releases the local database.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) status() string {
	s := a.session.State()
	who := "anonymous"
	switch s.Status() {
	case session.StatusLoading:
		who = "loading"
	case session.StatusAuthenticated:
		who = s.Username
	}
	return fmt.Sprintf("(%s) %s", who, a.path)
}

// navigate moves to path unless the guard redirects, and reports where the
// shell ended up.
func (a *App) navigate(path string) string {
	target, redirected := a.guard.Decide(a.session.State(), path)
	if redirected {
		fmt.Fprintf(a.out, "%s: redirected to %s\n", path, target)
		a.path = target
		return target
	}
	a.path = path
	return path
}

// requireHome navigates to the home route and reports whether the guard let
// the shell stay there.
func (a *App) requireHome() bool {
	return a.navigate(a.guard.HomePath) == a.guard.HomePath
}
