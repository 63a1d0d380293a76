package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	if !a.requireHome() {
		return nil
	}
	if err := a.users.FetchAll(ctx); err != nil {
		return err
	}
	printUsers(a.out, a.users.State().Items)
	return nil
}

// Show prints a user from the loaded list, or fetches it when the list does
// not have it.
func (a *App) Show(ctx context.Context, arg string) error {
	if !a.requireHome() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.fail(ctx, "show", err)
	}
	u, err := a.lookup(ctx, id)
	if err != nil {
		return a.fail(ctx, "show", err)
	}
	printUser(a.out, u)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.requireHome() {
		return nil
	}
	u, err := a.readUser(models.User{})
	if err != nil {
		return a.fail(ctx, "add", err)
	}
	created, err := a.users.Create(ctx, u)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created user %d\n", created.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, arg string) error {
	if !a.requireHome() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}
	current, err := a.lookup(ctx, id)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}
	u, err := a.readUser(current)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}
	if _, err := a.users.Update(ctx, id, u); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated user %d\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	if !a.requireHome() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		return a.fail(ctx, "delete", err)
	}
	if err := a.users.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted user %d\n", id)
	return nil
}

func (a *App) ClearError(context.Context) error {
	a.users.ClearError()
	return nil
}

func (a *App) lookup(ctx context.Context, id int64) (models.User, error) {
	for _, u := range a.users.State().Items {
		if u.ID == id {
			return u, nil
		}
	}
	return a.userRepo.GetByID(ctx, id)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// readUser prompts for every field, offering the values of base as
// defaults.
func (a *App) readUser(base models.User) (models.User, error) {
	u := base
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &u.Name},
		{"Username", &u.Username},
		{"Email", &u.Email},
		{"Phone", &u.Phone},
		{"Website", &u.Website},
		{"Street", &u.Address.Street},
		{"Suite", &u.Address.Suite},
		{"City", &u.Address.City},
		{"Zipcode", &u.Address.Zipcode},
		{"Latitude", &u.Address.Geo.Lat},
		{"Longitude", &u.Address.Geo.Lng},
		{"Company", &u.Company.Name},
		{"Catch phrase", &u.Company.CatchPhrase},
		{"BS", &u.Company.BS},
	}
	for _, f := range fields {
		v, err := GetDefaultText(a.reader, f.prompt, *f.dst, a.out)
		if err != nil {
			return models.User{}, err
		}
		*f.dst = v
	}
	return u, nil
}
