package main

import (
	"github.com/spf13/cobra"

	"github.com/siwuxie/postctl/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "postctl",
	Short: "postctl - blog post folder helper",
	Long:  "postctl creates new blog post folders and keeps their names in sync with the front matter inside them.",
}

var postsRootFlag string

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration from defaults, postctl.yml, environment,
// and the --root flag, in that order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return config.Config{}, err
	}
	if postsRootFlag != "" {
		cfg.PostsRoot = postsRootFlag
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&postsRootFlag, "root", "", "posts directory (overrides config and env)")
}
