package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round management commands",
	}

	cmd.AddCommand(newRoundAddCmd())
	cmd.AddCommand(newRoundEditCmd())
	cmd.AddCommand(newRoundDeleteCmd())

	return cmd
}

// parseScores parses repeated playerID=delta flags into a score map
func parseScores(raw []string) (map[string]int, error) {
	scores := make(map[string]int, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid score %q, expected playerID=value", entry)
		}
		value, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid score value in %q: %w", entry, err)
		}
		scores[parts[0]] = value
	}
	return scores, nil
}

func newRoundAddCmd() *cobra.Command {
	var rawScores []string
	var note string
	var special bool

	cmd := &cobra.Command{
		Use:   "add <table-id>",
		Short: "Record a round of scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(rawScores)
			if err != nil {
				return err
			}

			req := map[string]any{
				"scores":     scores,
				"note":       note,
				"is_special": special,
			}

			var result Round

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/rounds", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&rawScores, "score", "s", nil, "Score delta as playerID=value (repeat per player)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note for the round")
	cmd.Flags().BoolVar(&special, "special", false, "Mark the round as special")

	return cmd
}

func newRoundEditCmd() *cobra.Command {
	var rawScores []string
	var note string
	var special bool

	cmd := &cobra.Command{
		Use:   "edit <table-id> <round-id>",
		Short: "Replace a round's scores and note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(rawScores)
			if err != nil {
				return err
			}

			req := map[string]any{
				"scores":     scores,
				"note":       note,
				"is_special": special,
			}

			var result Round

			if err := client.Patch(fmt.Sprintf("/api/v1/tables/%s/rounds/%s", args[0], args[1]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&rawScores, "score", "s", nil, "Score delta as playerID=value (repeat per player)")
	cmd.Flags().StringVar(&note, "note", "", "Note for the round")
	cmd.Flags().BoolVar(&special, "special", false, "Mark the round as special")

	return cmd
}

func newRoundDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table-id> <round-id>",
		Short: "Delete a round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/tables/%s/rounds/%s", args[0], args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted round %s", args[1]))
			return nil
		},
	}
}
