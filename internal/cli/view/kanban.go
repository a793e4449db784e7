package view

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/types"
	"github.com/thenoetrevino/boardview/internal/user"
)

// KanbanCmd returns the kanban command
func KanbanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kanban",
		Short: "Show items grouped into status buckets",
		Long: `Print the board as kanban buckets.

Grouping, swimlanes, card order and WIP limits come from the board's saved
preferences unless overridden by flags.

Examples:
  # Group by the status column
  boardview kanban

  # One row of buckets per owner
  boardview kanban --swimlane owner

  # Only items whose name contains "api", newest due date first
  boardview kanban --filter api --sort due --desc

  # Only items assigned to me (BOARDVIEW_USER or the OS account)
  boardview kanban --mine
`,
		Args: cobra.NoArgs,
		RunE: runKanban,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("group-by", "", "Status or dropdown column ID to group by")
	cmd.Flags().String("swimlane", "", "Column ID to split into swimlanes (\"none\" to disable)")
	cmd.Flags().String("sort", "", "Column ID to order cards by (\"name\" for item name)")
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().String("filter", "", "Only show items whose name contains this text")
	cmd.Flags().Bool("mine", false, "Only show items whose person columns name the current user")
	cli.AddOutputFlags(cmd)

	return cmd
}

type kanbanOutput struct {
	BoardID      types.BoardID  `json:"boardId"`
	StatusColumn types.ColumnID `json:"statusColumn,omitempty"`
	Outcome      string         `json:"outcome"`
	Guidance     string         `json:"guidance,omitempty"`
	Buckets      []bucketJSON   `json:"buckets,omitempty"`
	Lanes        []laneJSON     `json:"lanes,omitempty"`
}

type bucketJSON struct {
	ID        types.BucketID `json:"id"`
	Name      string         `json:"name"`
	Count     int            `json:"count"`
	WIPLimit  *int           `json:"wipLimit,omitempty"`
	OverLimit bool           `json:"overLimit"`
	Items     []cli.ItemRef  `json:"items"`
}

type laneJSON struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Buckets []bucketJSON `json:"buckets"`
}

func runKanban(cmd *cobra.Command, _ []string) error {
	formatter, c, data, err := setup(cmd)
	if err != nil {
		return err
	}

	items := data.Items
	if mine, _ := cmd.Flags().GetBool("mine"); mine {
		items = assignedTo(items, data.Columns, user.Name())
	}

	cfg := kanbanConfig(cmd, data.Prefs)
	b := kanban.NewClassifier(data.Columns).Classify(items, cfg)

	if formatter.JSON {
		return formatter.Success(kanbanJSON(data.BoardID, b), "", "")
	}
	return formatter.Success(nil, render.Kanban(b, c.Styles(), render.KanbanOptions{}), "")
}

// kanbanConfig starts from the saved preferences and applies flag overrides
func kanbanConfig(cmd *cobra.Command, prefs models.ViewPreferences) kanban.Config {
	cfg := kanban.ConfigFromPreferences(prefs)
	if v, _ := cmd.Flags().GetString("group-by"); v != "" {
		cfg.GroupBy = types.ColumnID(v)
	}
	if cmd.Flags().Changed("swimlane") {
		v, _ := cmd.Flags().GetString("swimlane")
		if v == "none" {
			v = ""
		}
		cfg.SwimlaneBy = types.ColumnID(v)
	}
	if v, _ := cmd.Flags().GetString("sort"); v != "" {
		cfg.SortBy = types.ColumnID(v)
	}
	if cmd.Flags().Changed("desc") {
		cfg.SortDirection = models.SortAscending
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			cfg.SortDirection = models.SortDescending
		}
	}
	cfg.Filter, _ = cmd.Flags().GetString("filter")
	return cfg
}

// assignedTo keeps the items with a person cell naming who
func assignedTo(items []models.Item, columns []models.Column, who string) []models.Item {
	var people []types.ColumnID
	for _, col := range columns {
		if col.Type == models.ColumnTypePerson {
			people = append(people, col.ID)
		}
	}

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		for _, id := range people {
			if names(it.CellString(id)).has(who) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// names is a comma separated list of people
type names string

func (n names) has(who string) bool {
	for _, part := range strings.Split(string(n), ",") {
		if kanban.LooselyEqual(strings.TrimSpace(part), who) {
			return true
		}
	}
	return false
}

func kanbanJSON(boardID types.BoardID, b *kanban.Board) kanbanOutput {
	out := kanbanOutput{
		BoardID:  boardID,
		Outcome:  b.Outcome.String(),
		Guidance: b.Outcome.Guidance(),
	}
	if b.StatusColumn != nil {
		out.StatusColumn = b.StatusColumn.ID
	}
	if b.HasSwimlanes() {
		out.Lanes = []laneJSON{}
		for _, lane := range b.Swimlanes {
			out.Lanes = append(out.Lanes, laneJSON{ID: lane.ID, Name: lane.Name, Buckets: bucketsJSON(lane.Columns)})
		}
		return out
	}
	out.Buckets = bucketsJSON(b.Columns)
	return out
}

func bucketsJSON(cols []models.KanbanColumn) []bucketJSON {
	out := make([]bucketJSON, 0, len(cols))
	for _, col := range cols {
		out = append(out, bucketJSON{
			ID:        col.ID,
			Name:      col.Name,
			Count:     col.Count(),
			WIPLimit:  col.WIPLimit,
			OverLimit: col.OverLimit(),
			Items:     cli.Refs(col.Items),
		})
	}
	return out
}
