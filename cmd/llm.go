package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged tutor and problem-generation requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		if purpose != "" && !llm.KnownPurpose(purpose) {
			return fmt.Errorf("unknown purpose %q (want %s or %s)", purpose, llm.PurposeTutor, llm.PurposeProblemGen)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests logged.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Purpose,
				truncate(e.Model, 28), e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
		}
		return tw.Flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
		fmt.Fprintf(tw, "ID:\t%d\n", e.ID)
		fmt.Fprintf(tw, "Time:\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(tw, "Provider:\t%s\n", e.Provider)
		fmt.Fprintf(tw, "Model:\t%s\n", e.Model)
		fmt.Fprintf(tw, "Purpose:\t%s\n", e.Purpose)
		fmt.Fprintf(tw, "Tokens:\t%d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(tw, "Latency:\t%dms\n", e.LatencyMs)
		fmt.Fprintf(tw, "Success:\t%v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(tw, "Error:\t%s\n", e.ErrorMessage)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		printSection("REQUEST", e.RequestBody)
		printSection("RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tAVG MS\t")
		var calls, in, out int
		for _, u := range byPurpose {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			out += u.OutputTokens
		}
		fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d\t\t\n", calls, in, out)
		if err := tw.Flush(); err != nil {
			return err
		}

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST (USD)\t")
		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if price := llm.LookupCost(u.Model); price != nil {
				c := price.Cost(u.InputTokens, u.OutputTokens)
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
		}
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(tw, "%s\t\t\t\t%s\t\n", label, formatCost(total))
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func printSection(title, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Printf("\n%s\n%s\n%s\n%s\n", rule, title, rule, body)
}

// truncate cuts s to max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose ("+llm.PurposeTutor+" or "+llm.PurposeProblemGen+")")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
