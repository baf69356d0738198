package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
)

// execIface is the command surface shared by one-shot runs and the REPL.
type execIface interface {
	Status(ctx context.Context, args []string) error
	AddUser(ctx context.Context, args []string) error
	GetUser(ctx context.Context, args []string) error
	GetUserByToken(ctx context.Context, args []string) error
	GetUserByEmail(ctx context.Context, args []string) error
	GetUsers(ctx context.Context, args []string) error
	UpdateUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
}

// dispatch runs cmd and reports whether it was recognized.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "status":
		return true, a.Status(ctx, args)
	case "add-user":
		return true, a.AddUser(ctx, args)
	case "get-user":
		return true, a.GetUser(ctx, args)
	case "get-user-by-token":
		return true, a.GetUserByToken(ctx, args)
	case "get-user-by-email":
		return true, a.GetUserByEmail(ctx, args)
	case "get-users":
		return true, a.GetUsers(ctx, args)
	case "update-user":
		return true, a.UpdateUser(ctx, args)
	case "delete-user":
		return true, a.DeleteUser(ctx, args)
	default:
		return false, nil
	}
}

func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("status <question>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	answer, err := a.client.Status(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printAnswer(answer)
}

func (a *App) AddUser(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("add-user <name> <email> [age]")
	}

	var age *int32
	if len(args) == 3 {
		v, err := parseInt32("age", args[2])
		if err != nil {
			return err
		}
		age = &v
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.CreateUser(ctx, args[0], args[1], age)
	if err != nil {
		return err
	}
	return a.printUser(u)
}

func (a *App) GetUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("get-user <id>")
	}
	id, err := parseInt64("id", args[0])
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.printUser(u)
}

func (a *App) GetUserByToken(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("get-user-by-token <token>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.GetUserByToken(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printUser(u)
}

func (a *App) GetUserByEmail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("get-user-by-email <email>")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.GetUserByEmail(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printUser(u)
}

func (a *App) GetUsers(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return usageError("get-users [start_id] [page_size]")
	}

	var startID int64
	var pageSize *int32
	if len(args) >= 1 {
		v, err := parseInt64("start_id", args[0])
		if err != nil {
			return err
		}
		startID = v
	}
	if len(args) == 2 {
		v, err := parseInt32("page_size", args[1])
		if err != nil {
			return err
		}
		pageSize = &v
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.ListUsers(ctx, startID, pageSize)
	if err != nil {
		return err
	}
	return a.printUsers(list)
}

func (a *App) UpdateUser(ctx context.Context, args []string) error {
	const usage = "update-user <id> <version> [-name N] [-age A]"

	fs := flag.NewFlagSet("update-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "new name")
	age := fs.String("age", "", "new age")

	pos, err := parseInterspersed(fs, args)
	if err != nil || len(pos) != 2 {
		return usageError(usage)
	}

	id, err := parseInt64("id", pos[0])
	if err != nil {
		return err
	}
	version, err := parseInt64("version", pos[1])
	if err != nil {
		return err
	}

	var namePtr *string
	var agePtr *int32
	var ageErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			namePtr = name
		case "age":
			var v int32
			v, ageErr = parseInt32("age", *age)
			agePtr = &v
		}
	})
	if ageErr != nil {
		return ageErr
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.UpdateUser(ctx, id, version, namePtr, agePtr)
	if err != nil {
		return err
	}
	return a.printUser(u)
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("delete-user <id> <version>")
	}
	id, err := parseInt64("id", args[0])
	if err != nil {
		return err
	}
	version, err := parseInt64("version", args[1])
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.DeleteUser(ctx, id, version)
	if err != nil {
		return err
	}
	return a.printUser(u)
}

// parseInterspersed parses fs allowing flags before, between and after
// positional arguments, which are returned in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return pos, nil
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
}

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

func parseInt64(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", field, raw)
	}
	return v, nil
}

func parseInt32(field, raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", field, raw)
	}
	return int32(v), nil
}
