package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/resources"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
)

// renderer prints state transitions pushed by the controllers. It only
// reports changes: the first snapshot it sees is compared against the zero
// state.
type renderer struct {
	mu sync.Mutex
	w  io.Writer

	lastSession session.State
	lastUsers   resources.ListState[models.User]
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w}
}

func (r *renderer) session(s session.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.lastSession
	r.lastSession = s
	if prev == s {
		return
	}

	switch s.Status() {
	case session.StatusAuthenticated:
		fmt.Fprintf(r.w, "* signed in as %s\n", s.Username)
	case session.StatusAnonymous:
		fmt.Fprintln(r.w, "* signed out")
	}
}

func (r *renderer) users(s resources.ListState[models.User]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.lastUsers
	r.lastUsers = s

	if s.IsLoading && !prev.IsLoading {
		fmt.Fprintln(r.w, "* loading users...")
	}
	if s.HasError() && s.ErrorMessage != prev.ErrorMessage {
		fmt.Fprintf(r.w, "! %s (type 'clear' to dismiss)\n", s.ErrorMessage)
	}
}

func printUsers(w io.Writer, items []models.User) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no users")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCITY\tCOMPANY")
	for _, u := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Address.City, u.Company.Name)
	}
	_ = tw.Flush()
}

func printUser(w io.Writer, u models.User) {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %d\n", u.ID)
	fmt.Fprintf(&b, "Name:      %s\n", u.Name)
	if u.Username != "" {
		fmt.Fprintf(&b, "Username:  %s\n", u.Username)
	}
	fmt.Fprintf(&b, "Email:     %s\n", u.Email)
	fmt.Fprintf(&b, "Phone:     %s\n", u.Phone)
	fmt.Fprintf(&b, "Website:   %s\n", u.Website)
	a := u.Address
	fmt.Fprintf(&b, "Address:   %s, %s, %s %s (%s, %s)\n", a.Street, a.Suite, a.City, a.Zipcode, a.Geo.Lat, a.Geo.Lng)
	fmt.Fprintf(&b, "Company:   %s\n", u.Company.Name)
	fmt.Fprintf(&b, "           %q / %s\n", u.Company.CatchPhrase, u.Company.BS)
	_, _ = io.WriteString(w, b.String())
}
