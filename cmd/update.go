package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/thermoviz/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update thermoviz to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")
		if target != "" && target[0] != 'v' {
			target = "v" + target
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a release build to use update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Printf("Already running the latest release (%s).\n", version)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nTry running: sudo thermoviz update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("version", "", "Install this release tag instead of the latest")
}
