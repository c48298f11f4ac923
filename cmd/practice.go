package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/practice"
	"github.com/abhisek/thermoviz/internal/problemgen"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice problems without the TUI",
}

var practiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, err := topicFlag(cmd)
		if err != nil {
			return err
		}
		showAnswers, _ := cmd.Flags().GetBool("answers")

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		header := "ID\tTOPIC\tDIFFICULTY\tQUESTION"
		if showAnswers {
			header += "\tANSWER"
		}
		fmt.Fprintln(tw, header)
		for _, p := range practice.Filter(practice.Catalog(), topic) {
			line := fmt.Sprintf("%s\t%s\t%s\t%s", p.ID, p.Topic.Label(), p.Difficulty, truncate(oneLine(p.Question), 60))
			if showAnswers {
				line += "\t" + p.CorrectAnswer()
			}
			fmt.Fprintln(tw, line)
		}
		return tw.Flush()
	},
}

var practiceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one problem with its formula and hint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := practice.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown problem %q (see `thermoviz practice list`)", args[0])
		}
		printProblem(&p)
		return nil
	},
}

var practiceGradeCmd = &cobra.Command{
	Use:     "grade <id> <answer>",
	Short:   "Grade an answer to a built-in problem",
	Args:    cobra.ExactArgs(2),
	Example: "  thermoviz practice grade problem1 125400",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := practice.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown problem %q (see `thermoviz practice list`)", args[0])
		}
		if p.Grade(args[1]) == practice.Correct {
			fmt.Println("✓ Correct!")
			return nil
		}
		fmt.Printf("✗ Incorrect. The answer is %s\n", p.CorrectAnswer())
		if p.Explanation != "" {
			fmt.Println()
			fmt.Println(p.Explanation)
		}
		return nil
	},
}

var practiceGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the configured LLM for a new problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, err := topicFlag(cmd)
		if err != nil {
			return err
		}
		difficulty, _ := cmd.Flags().GetString("difficulty")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := logger.NewContext(cmd.Context(), logger.Default())
		gen, err := newGenerator(ctx, st)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
		defer cancel()
		p, err := gen.Generate(ctx, problemgen.GenerateInput{
			Topic:      topic,
			Difficulty: practice.Difficulty(difficulty),
		})
		if err != nil {
			return fmt.Errorf("generate problem: %w", err)
		}

		if asJSON(cmd) {
			return printJSON(p)
		}
		printProblem(p)
		fmt.Printf("\nAnswer: %s\n", p.CorrectAnswer())
		return nil
	},
}

func printProblem(p *practice.Problem) {
	fmt.Printf("[%s] %s · %s\n\n%s\n", p.ID, p.Topic.Label(), p.Difficulty, p.Question)
	if p.Formula != "" {
		fmt.Printf("\nFormula: %s\n", p.Formula)
	}
	if p.Hint != "" {
		fmt.Printf("Hint: %s\n", p.Hint)
	}
}

func topicFlag(cmd *cobra.Command) (practice.Topic, error) {
	s, _ := cmd.Flags().GetString("topic")
	t, ok := practice.ParseTopic(s)
	if !ok {
		names := make([]string, 0, len(practice.Topics()))
		for _, t := range practice.Topics() {
			names = append(names, string(t))
		}
		return "", fmt.Errorf("unknown topic %q (one of %s)", s, strings.Join(names, ", "))
	}
	return t, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func init() {
	for _, c := range []*cobra.Command{practiceListCmd, practiceGenerateCmd} {
		c.Flags().String("topic", "", "Topic filter, e.g. thermal-energy, enthalpy, hess-law")
	}
	practiceListCmd.Flags().Bool("answers", false, "Include the expected answers")
	practiceGenerateCmd.Flags().String("difficulty", string(practice.DifficultyMedium), "easy, medium or hard")
	practiceGenerateCmd.Flags().Bool("json", false, "Print the problem as JSON")

	practiceCmd.AddCommand(practiceListCmd)
	practiceCmd.AddCommand(practiceShowCmd)
	practiceCmd.AddCommand(practiceGradeCmd)
	practiceCmd.AddCommand(practiceGenerateCmd)
}
