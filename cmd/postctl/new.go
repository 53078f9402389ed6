package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/siwuxie/postctl/internal/cli/output"
	"github.com/siwuxie/postctl/internal/post"
)

var newCmd = &cobra.Command{
	Use:   "new <title>...",
	Short: "Create a new post folder with templated front matter",
	Long: `Create a dated post folder under the posts directory.

All arguments are joined into the post title; the folder name is today's
date plus a slug derived from the title.

Example:
  postctl new My wonderful first post`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		title := strings.Join(args, " ")

		if _, err := os.Stat(cfg.PostsRoot); os.IsNotExist(err) {
			output.Info("📁 Creating %q directory.\n", cfg.PostsRoot)
		}

		path, err := post.Create(cfg, title, time.Now())
		if err != nil {
			return err
		}
		output.Success("✅ Post created!\n")
		output.Info("   File at: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
