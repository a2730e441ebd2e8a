package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table management commands",
	}

	cmd.AddCommand(newTableCreateCmd())
	cmd.AddCommand(newTableListCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableDeleteCmd())

	return cmd
}

func newTableCreateCmd() *cobra.Command {
	var players []string
	var ruleType string
	var ruleValue int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":    args[0],
				"players": players,
			}
			if ruleType != "" {
				req["rules"] = map[string]any{
					"type":  ruleType,
					"value": ruleValue,
				}
			}

			var result Table

			if err := client.Post("/api/v1/tables", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&players, "player", "p", nil, "Player name (repeat for each player, at least 2 required)")
	cmd.Flags().StringVar(&ruleType, "rule", "", "Rule type: ROUND_LIMIT, SCORE_LIMIT")
	cmd.Flags().IntVar(&ruleValue, "rule-value", 0, "Rule threshold value")

	return cmd
}

func newTableListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tables, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Table

			if err := client.Get("/api/v1/tables", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(TableList(result))
			return nil
		},
	}
}

func newTableGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get table details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Table

			if err := client.Get(fmt.Sprintf("/api/v1/tables/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTableDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a table and all its rounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete table %s and all of its rounds? [y/N]: ", args[0])
				var answer string
				_, _ = fmt.Scanln(&answer)
				if answer != "y" && answer != "Y" {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/tables/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted table %s", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
