package item

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/types"
)

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <item> <bucket>",
		Short: "Move an item to another kanban bucket",
		Long: `Move an item to another kanban bucket, writing the bucket's status value.

Items are matched by ID or name; buckets by ID, name or a fuzzy match on
the name. Moving to "No Status" clears the status.

Examples:
  boardview move Launch "In Progress"
  boardview move C done
  boardview move Launch prog --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("group-by", "", "Status or dropdown column ID to group by")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	s, err := open(cmd)
	if err != nil {
		return err
	}

	item, err := cli.FindItem(s.data.Items, args[0])
	if err != nil {
		return s.formatter.Fail(err)
	}

	cfg := kanban.ConfigFromPreferences(s.data.Prefs)
	if v, _ := cmd.Flags().GetString("group-by"); v != "" {
		cfg.GroupBy = types.ColumnID(v)
	}
	b := kanban.NewClassifier(s.data.Columns).Classify(s.data.Items, cfg)

	bucket, err := cli.FindBucket(b.Buckets(), args[1])
	if err != nil {
		return s.formatter.FailWithSuggestion(err, "Available buckets: "+cli.FormatAvailableBuckets(b.Buckets()))
	}

	target := mutation.BucketTarget{Bucket: bucket, StatusColumn: b.StatusColumn}
	m, err := s.ctrl.Apply(cmd.Context(), mutation.Payload{ItemID: item.ID}, target)
	if err != nil {
		return s.formatter.Fail(fmt.Errorf("failed to move %s: %w", item.Name, err))
	}

	out := result{ItemID: item.ID, Name: item.Name, Changed: m != nil, Target: bucket.Name}
	if m == nil {
		return s.formatter.Success(out, fmt.Sprintf("%s is already in %s", item.Name, bucket.Name), string(item.ID))
	}
	out.Cells, out.Status = m.Cells, m.Status
	return s.formatter.Success(out, fmt.Sprintf("Moved %s to %s", item.Name, bucket.Name), string(item.ID))
}
