package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print every word in the dictionary",
		RunE:  list,
		Args:  cobra.NoArgs,
	}

	findCmd = &cobra.Command{
		Use:     "find [prefix]",
		Example: "find app",
		Short:   "Print the words starting with a prefix and the letters that may follow it",
		RunE:    find,
		Args:    cobra.MaximumNArgs(1),
	}

	nextCmd = &cobra.Command{
		Use:     "next [prefix]",
		Example: "next ba",
		Short:   "Print the letters that may follow a prefix",
		RunE:    next,
		Args:    cobra.MaximumNArgs(1),
	}

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Add and look up words interactively",
		RunE:  shell,
		Args:  cobra.NoArgs,
	}
)

func prefixArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func list(cmd *cobra.Command, args []string) error {
	session, err := newSession(cmd)
	if err != nil {
		return err
	}

	session.List()
	return nil
}

func find(cmd *cobra.Command, args []string) error {
	session, err := newSession(cmd)
	if err != nil {
		return err
	}

	session.Find(prefixArg(args))
	return nil
}

func next(cmd *cobra.Command, args []string) error {
	session, err := newSession(cmd)
	if err != nil {
		return err
	}

	session.Next(prefixArg(args))
	return nil
}

func shell(cmd *cobra.Command, args []string) error {
	session, err := newSession(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for a list of commands.")
	session.List()
	return session.Run(cmd.Context(), cmd.InOrStdin())
}
