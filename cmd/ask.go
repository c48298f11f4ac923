package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/tutor"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:     "ask <question>...",
	Short:   "Ask the tutor one question",
	Args:    cobra.MinimumNArgs(1),
	Example: `  thermoviz ask "why does temperature stay flat while ice melts?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := logger.NewContext(cmd.Context(), logger.Default())
		reply, err := newTutor(st).Ask(ctx, strings.Join(args, " "))
		switch {
		case errors.Is(err, tutor.ErrNoCredential):
			return fmt.Errorf("%w: run `thermoviz key set` or set %s", err, tutor.EnvAPIKey)
		case errors.Is(err, tutor.ErrEmptyQuestion):
			return err
		case err != nil:
			fmt.Println(tutor.FailureMessage)
			return nil
		}

		fmt.Printf("%s: %s\n", tutor.Persona, reply)
		return nil
	},
}
