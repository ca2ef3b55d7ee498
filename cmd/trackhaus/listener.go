package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/subcommands"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"golang.org/x/crypto/bcrypt"
)

type listenerCmd struct {
	flags *flag.FlagSet
}

func (l listenerCmd) Name() string {
	return "listener"
}

func (l listenerCmd) Synopsis() string {
	return "manage listener accounts"
}

func (l listenerCmd) Usage() string {
	return `listener <add|show> <arguments>:
	manage listener accounts
`
}

func (l *listenerCmd) SetFlags(f *flag.FlagSet) {}

func (l *listenerCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	l.flags = f

	cmder := subcommands.NewCommander(f, path.Base(os.Args[0])+" listener")
	cmder.Register(cmder.HelpCommand(), "")
	cmder.Register(cmder.CommandsCommand(), "")
	cmder.Register(cmd{
		name:     "add",
		synopsis: "creates a new listener and prints its api key",
		usage: `add <email> <password>:
		creates a new listener and prints its api key
		`,
		execute: withConfig(withStorage(l.add)),
	}, "")
	cmder.Register(cmd{
		name:     "show",
		synopsis: "shows a listener and its api key",
		usage: `show <email>:
		shows a listener and its api key
		`,
		execute: withConfig(withStorage(l.show)),
	}, "")

	return cmder.Execute(ctx, args...)
}

type newListener struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

func (l *listenerCmd) add(ctx context.Context, cfg config.Config, store trackhaus.StorageService) error {
	const op errors.Op = "cmd/trackhaus/listenerCmd.add"

	args := l.flags.Args()
	if len(args) < 3 {
		return errors.E(op, errors.InvalidArgument, errors.Info("missing email or password argument"))
	}

	nl := newListener{Email: args[1], Password: args[2]}
	if err := validator.New().Struct(nl); err != nil {
		return errors.E(op, errors.InvalidArgument, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nl.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.E(op, err)
	}

	key, err := trackhaus.NewAPIKey()
	if err != nil {
		return errors.E(op, err)
	}

	listener := trackhaus.Listener{
		Email:        nl.Email,
		PasswordHash: string(hash),
		APIKey:       key,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	listener.ID, err = store.Listeners(ctx).Create(listener)
	if err != nil {
		return errors.E(op, err)
	}

	printListener(os.Stdout, &listener)
	return nil
}

func (l *listenerCmd) show(ctx context.Context, cfg config.Config, store trackhaus.StorageService) error {
	const op errors.Op = "cmd/trackhaus/listenerCmd.show"

	args := l.flags.Args()
	if len(args) < 2 {
		return errors.E(op, errors.InvalidArgument, errors.Info("missing email argument"))
	}

	listener, err := store.Listeners(ctx).ByEmail(args[1])
	if err != nil {
		return errors.E(op, err)
	}

	printListener(os.Stdout, listener)
	return nil
}

func printListener(w io.Writer, l *trackhaus.Listener) {
	fmt.Fprintf(w, "id:      %s\n", l.ID)
	fmt.Fprintf(w, "email:   %s\n", l.Email)
	fmt.Fprintf(w, "active:  %t\n", l.Active)
	fmt.Fprintf(w, "api key: %s\n", l.APIKey)
}
