package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/siwuxie/postctl/internal/cli/output"
	"github.com/siwuxie/postctl/internal/rename"
)

var renameExecute bool

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename post folders to match their front matter",
	Long: `Scan the posts directory and compute the canonical <date>-<slug> name
for each folder from the title and date in its front matter.

Without --execute only the plan is shown. With --execute the plan is shown,
a single confirmation is requested, and the renames are applied. Targets
that already exist are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if renameExecute {
			output.Info("🚀 Running in execute mode: folders will be renamed to match their metadata.\n\n")
		} else {
			output.Info("💧 Running in dry-run mode: the plan below is a preview only.\n")
			output.Info("   To apply it, re-run with: postctl rename --execute\n\n")
		}

		if _, err := os.Stat(cfg.PostsRoot); err != nil {
			output.Error("❌ Posts directory %q not found.\n", cfg.PostsRoot)
			return nil
		}

		plan, warnings, err := rename.Plan(cfg.PostsRoot)
		if err != nil {
			output.Error("❌ %v\n", err)
			return nil
		}
		for _, w := range warnings {
			output.Warn("⚠️  %s\n", w)
		}

		if len(plan) == 0 {
			output.Success("🎉 All folder names already match their metadata, nothing to do!\n")
			return nil
		}

		output.Info("Rename plan:\n\n")
		for _, e := range plan {
			output.Info("📁 %s\n", e.Old)
			output.Info("   ➡️  %s\n\n", e.New)
		}

		if !renameExecute {
			return nil
		}

		confirmer := rename.TerminalConfirmer{In: cmd.InOrStdin(), Out: output.Out}
		if !confirmer.Confirm("Apply all renames above?") {
			output.Info("\nOperation cancelled.\n")
			return nil
		}

		output.Info("\n🚀 Renaming...\n")
		printOutcomes(rename.Execute(cfg.PostsRoot, plan))
		output.Success("\n✨ Done!\n")
		return nil
	},
}

func printOutcomes(outcomes []rename.Outcome) {
	for _, o := range outcomes {
		switch o.Status {
		case rename.StatusRenamed:
			output.Info("%s %s -> %s\n", color.GreenString("✅ renamed:"), o.Entry.Old, o.Entry.New)
		case rename.StatusSkippedCollision:
			output.Warn("%s target %q already exists\n", color.YellowString("⚠️  skipped:"), o.Entry.New)
		case rename.StatusFailed:
			output.Warn("%s %s (%v)\n", color.RedString("❌ failed:"), o.Entry.Old, o.Err)
		}
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().BoolVar(&renameExecute, "execute", false, "apply the rename plan after confirmation")
}
