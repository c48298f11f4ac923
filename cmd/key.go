package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/tutor"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the tutor's Gemini API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store an API key (read from stdin when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			fmt.Fprint(os.Stderr, "API key: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read key: %w", err)
			}
			key = line
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := tutor.SaveKey(cmd.Context(), st.SettingsRepo(), key); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", tutor.MaskKey(strings.TrimSpace(key)))
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored key, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		key, ok, err := st.SettingsRepo().Get(cmd.Context(), store.CredentialKey)
		if err != nil {
			return err
		}
		if !ok {
			if os.Getenv(tutor.EnvAPIKey) != "" {
				fmt.Printf("No stored key; using %s.\n", tutor.EnvAPIKey)
				return nil
			}
			fmt.Println("No key configured.")
			return nil
		}
		fmt.Println(tutor.MaskKey(key))
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored key",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SettingsRepo().Delete(cmd.Context(), store.CredentialKey); err != nil {
			return err
		}
		fmt.Println("Key removed.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)
}
