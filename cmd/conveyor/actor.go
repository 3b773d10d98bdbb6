// Actor commands manage the acting user whose name fills done-by fields.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var actorCmd = &cobra.Command{
	Use:   "actor",
	Short: "Show or set the acting user",
}

var actorShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current acting user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		name := actorName(repo)
		if name == "" {
			fmt.Println("No acting user set; use `conveyor actor set <name>`")
			return nil
		}
		fmt.Println(name)
		return nil
	},
}

var actorSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Persist the acting user by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		repo.SetActor(args[0])
		fmt.Println("Acting user:", args[0])
		return nil
	},
}

var actorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tROLE")
		for _, u := range repo.Users() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Name, u.Role)
		}
		return tw.Flush()
	},
}

func init() {
	actorCmd.AddCommand(actorShowCmd)
	actorCmd.AddCommand(actorSetCmd)
	actorCmd.AddCommand(actorListCmd)
}
