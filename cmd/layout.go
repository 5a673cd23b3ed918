package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/layout"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/store"
)

var skipConfirm bool

// confirmReset asks before deleting the stored layout. Tests replace it.
var confirmReset = huhConfirm

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset the persisted panel layout",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Print the stored and effective panel sizes",
	Long: `Prints every persisted layout entry next to the size the dock would use for
it. Entries that are missing or invalid show the default. Pass a section id
(components, layers, assets) to print only that section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutShow,
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted layout so every panel returns to its default size",
	Long: `Deletes every persisted layout entry. It will prompt for confirmation before
proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runLayoutReset,
}

func init() {
	layoutResetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	layoutCmd.AddCommand(layoutShowCmd, layoutResetCmd)
	rootCmd.AddCommand(layoutCmd)
}

// unmeasured reports no dimensions, so only the fixed bounds apply.
type unmeasured struct{}

func (unmeasured) ViewportWidth() float64 { return 0 }
func (unmeasured) ColumnHeight() float64  { return 0 }

func runLayoutShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening layout store: %w", err)
	}
	defer st.Close()

	only := ""
	if len(args) == 1 {
		only = args[0]
	}
	return showLayout(cmd.OutOrStdout(), st.adapter, layout.DefaultSections, only)
}

// layoutRow is one line of `layout show`.
type layoutRow struct {
	key       string
	stored    string
	effective string
}

// showLayout prints the layout for sections. A non-empty only restricts the
// output to that section.
func showLayout(w io.Writer, a *store.Adapter, sections []layout.SectionSpec, only string) error {
	if only != "" {
		found := false
		for _, s := range sections {
			if s.ID == only {
				found = true
				break
			}
		}
		if !found {
			return errors.SectionNotFound(only)
		}
	}

	deps := panel.Deps{Store: a, Window: drag.NewWindow(), Frames: drag.NewFrameQueue()}
	d := layout.NewDock(deps, unmeasured{}, layout.WithSections(sections))
	defer d.Close()
	b := d.Snapshot()

	var rows []layoutRow
	if only == "" {
		rows = append(rows,
			layoutRow{panel.LeftKey, stored(a, panel.LeftKey), px(b.Left.Width)},
			layoutRow{panel.RightKey, stored(a, panel.RightKey), sized(b.Right.Width, b.Right.Collapsed)},
		)
	}
	for _, id := range b.SectionIDs {
		if only != "" && id != only {
			continue
		}
		s := b.Sections[id]
		key := panel.SectionKey(id)
		rows = append(rows, layoutRow{key, stored(a, key), sized(s.Height, s.Collapsed)})
	}

	keyW, storedW := len("KEY"), len("STORED")
	for _, r := range rows {
		keyW = max(keyW, len(r.key))
		storedW = max(storedW, len(r.stored))
	}
	fmt.Fprintf(w, "%-*s  %-*s  %s\n", keyW, "KEY", storedW, "STORED", "EFFECTIVE")
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", keyW, r.key, storedW, r.stored, r.effective)
	}
	return nil
}

func stored(a *store.Adapter, key string) string {
	raw, ok := a.Raw(key)
	if !ok {
		return "-"
	}
	return string(raw)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func sized(v float64, collapsed bool) string {
	if collapsed {
		return px(v) + " (collapsed)"
	}
	return px(v)
}

func runLayoutReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening layout store: %w", err)
	}
	defer st.Close()

	if !skipConfirm {
		ok, err := confirmReset(fmt.Sprintf("Reset the layout stored in %s?", cfg.StorePath()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	n := resetLayout(st.adapter, layout.StorageKeys(layout.DefaultSections))
	fmt.Fprintf(cmd.OutOrStdout(), "Reset %d layout entr%s.\n", n, plural(n, "y", "ies"))
	return nil
}

// resetLayout deletes every stored key and returns how many were present.
func resetLayout(a *store.Adapter, keys []string) int {
	n := 0
	for _, key := range keys {
		if _, ok := a.Raw(key); !ok {
			continue
		}
		if a.Delete(key) {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func huhConfirm(title string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Reset").
			Negative("Cancel").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
