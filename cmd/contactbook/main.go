package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/contactbook"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/logging"
	"github.com/smileynet/contactbook/internal/store"
	"github.com/smileynet/contactbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitSuccess = 0
	exitData    = 1
	exitSetup   = 2
)

// errNoTTY is returned when the UI is started without a terminal.
var errNoTTY = errors.New("requires a terminal (TTY)")

// Globals are the flags shared by every command.
type Globals struct {
	File    string `help:"Contacts file (overrides config)." short:"f" placeholder:"PATH"`
	Config  string `help:"Extra config file layered over the user and project config." placeholder:"PATH"`
	Verbose bool   `help:"Log at debug level." short:"v"`
}

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Globals

	Version       kong.VersionFlag `help:"Show version." short:"V"`
	UI            UICmd            `cmd:"" default:"1" help:"Open the interactive contact manager."`
	List          ListCmd          `cmd:"" help:"List contacts."`
	Add           AddCmd           `cmd:"" help:"Add a contact."`
	Update        UpdateCmd        `cmd:"" help:"Update the contact at a list position."`
	Delete        DeleteCmd        `cmd:"" help:"Delete the contact at a list position."`
	Search        SearchCmd        `cmd:"" help:"Search contacts by name or phone."`
	ExampleConfig ExampleConfigCmd `cmd:"" name:"example-config" help:"Print an example config file."`
}

// session holds everything a command needs once setup has succeeded.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	loadErr error
}

// loadConfig loads layered config from user, project and flag paths with env
// and flag overrides.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook.yaml",
		g.Config,
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if g.File != "" {
		cfg.Store.File = g.File
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// open loads config, builds the logger and loads the contacts file.
// A load error does not fail setup; it is kept on the session for the caller to report.
func (g *Globals) open() (*session, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log, g.Verbose)
	if err != nil {
		return nil, err
	}
	s, loadErr := store.Open(cfg.Store.File, store.WithLogger(logger))
	return &session{cfg: cfg, logger: logger, store: s, loadErr: loadErr}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// warn prints a load error, if any, as a warning.
func (s *session) warn(w io.Writer) {
	if s.loadErr != nil {
		_, _ = fmt.Fprintf(w, "warning: %s\n", tui.ErrorNotice(s.loadErr, "").Text)
	}
}

// UICmd runs the interactive contact manager.
type UICmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run executes the ui command.
func (u *UICmd) Run(g *Globals) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return u.run(false, nil)
	}

	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer sess.close()

	var opts []tui.ModelOption
	if sess.loadErr != nil {
		opts = append(opts, tui.WithNotice(tui.ErrorNotice(sess.loadErr, "")))
	}
	m := tui.NewModel(sess.store, opts...)

	var progOpts []tea.ProgramOption
	if sess.cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	return u.run(true, tea.NewProgram(m, progOpts...))
}

func (u *UICmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("ui: %w", errNoTTY)
	}
	_, err := prog.Run()
	return err
}

// ListCmd prints the contacts in collection order.
type ListCmd struct {
	Long bool `help:"Include email and address." short:"l"`
}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer sess.close()
	sess.warn(os.Stderr)

	return l.run(os.Stdout, sess.store)
}

func (l *ListCmd) run(w io.Writer, s *store.Store) error {
	contacts := s.Contacts()
	if len(contacts) == 0 {
		_, _ = fmt.Fprintln(w, "No contacts.")
		return nil
	}
	printContacts(w, contacts, l.Long)
	return nil
}

// printContacts writes numbered "name - phone" lines, with detail lines when long is set.
func printContacts(w io.Writer, contacts []contact.Contact, long bool) {
	for i, c := range contacts {
		_, _ = fmt.Fprintf(w, "%3d. %s\n", i+1, c.Summary())
		if long {
			_, _ = fmt.Fprintf(w, "     email:   %s\n", c.Email)
			_, _ = fmt.Fprintf(w, "     address: %s\n", c.Address)
		}
	}
}

// ContactFlags are the field flags shared by add and update.
type ContactFlags struct {
	Name    string `help:"Contact name."`
	Phone   string `help:"Phone number."`
	Email   string `help:"Email address (optional)."`
	Address string `help:"Postal address (optional)."`
}

func (f ContactFlags) input() contact.Input {
	return contact.Input{Name: f.Name, Phone: f.Phone, Email: f.Email, Address: f.Address}
}

// AddCmd appends a contact.
type AddCmd struct {
	ContactFlags `embed:""`
}

// Run executes the add command.
func (a *AddCmd) Run(g *Globals) error {
	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	defer sess.close()
	sess.warn(os.Stderr)

	return a.run(os.Stdout, sess.store)
}

func (a *AddCmd) run(w io.Writer, s *store.Store) error {
	c, err := s.Add(a.input())
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s: %d. %s\n", tui.MsgAdded, s.Len(), c.Summary())
	return nil
}

// UpdateCmd replaces the contact at a 1-based list position.
// Fields left unset keep their current values.
type UpdateCmd struct {
	ContactFlags `embed:""`

	Position int `arg:"" help:"Position shown by list (1-based)."`
}

// Run executes the update command.
func (u *UpdateCmd) Run(g *Globals) error {
	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	defer sess.close()
	sess.warn(os.Stderr)

	return u.run(os.Stdout, sess.store)
}

func (u *UpdateCmd) run(w io.Writer, s *store.Store) error {
	current, err := contactAt(s, u.Position)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	in := current.Input()
	if u.Name != "" {
		in.Name = u.Name
	}
	if u.Phone != "" {
		in.Phone = u.Phone
	}
	if u.Email != "" {
		in.Email = u.Email
	}
	if u.Address != "" {
		in.Address = u.Address
	}

	c, err := s.Update(current.ID, in)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s: %d. %s\n", tui.MsgUpdated, u.Position, c.Summary())
	return nil
}

// DeleteCmd removes the contact at a 1-based list position.
type DeleteCmd struct {
	Position int `arg:"" help:"Position shown by list (1-based)."`
}

// Run executes the delete command.
func (d *DeleteCmd) Run(g *Globals) error {
	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	defer sess.close()
	sess.warn(os.Stderr)

	return d.run(os.Stdout, sess.store)
}

func (d *DeleteCmd) run(w io.Writer, s *store.Store) error {
	c, err := contactAt(s, d.Position)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := s.Delete(c.ID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", tui.MsgDeleted, c.Summary())
	return nil
}

// contactAt resolves a 1-based list position to a contact.
func contactAt(s *store.Store, pos int) (contact.Contact, error) {
	c, ok := s.At(pos - 1)
	if !ok {
		return contact.Contact{}, fmt.Errorf("%w: no contact at position %d", store.ErrNoSelection, pos)
	}
	return c, nil
}

// SearchCmd prints contacts whose name or phone contains the query.
type SearchCmd struct {
	Query string `arg:"" help:"Case-insensitive name substring or phone substring."`
}

// Run executes the search command.
func (c *SearchCmd) Run(g *Globals) error {
	sess, err := g.open()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	defer sess.close()
	sess.warn(os.Stderr)

	return c.run(os.Stdout, sess.store)
}

func (c *SearchCmd) run(w io.Writer, s *store.Store) error {
	results, found := s.Search(c.Query)
	if !found {
		_, _ = fmt.Fprintln(w, tui.MsgNoResults)
		printContacts(w, s.Contacts(), false)
		return nil
	}
	for _, r := range results {
		_, _ = fmt.Fprintln(w, r.Summary())
	}
	return nil
}

// ExampleConfigCmd prints the embedded example config.
type ExampleConfigCmd struct{}

// Run executes the example-config command.
func (e *ExampleConfigCmd) Run() error {
	return e.run(os.Stdout)
}

func (e *ExampleConfigCmd) run(w io.Writer) error {
	_, err := w.Write(contactbook.ExampleConfig)
	return err
}

// exitCode maps command errors to process exit codes.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, contact.ErrValidation),
		errors.Is(err, store.ErrNoSelection),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrWrite):
		return exitData
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("Manage a contact list stored in a JSON file."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
