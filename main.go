package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	devToToken    string
	repositoryURL string
	silentMode    bool
)

var rootCmd = &cobra.Command{
	Use:           "dev-to-git",
	Short:         "Publish local markdown articles to dev.to",
	Long:          `Publishes a set of markdown articles (with front matter) to dev.to, rewriting relative image links against the enclosing git repository.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get API token
		if devToToken == "" {
			devToToken = os.Getenv("DEV_TO_GIT_TOKEN")
		}
		if devToToken == "" {
			return fmt.Errorf("dev.to API key required: use --dev-to-token flag or DEV_TO_GIT_TOKEN environment variable")
		}

		logger := log.New(os.Stderr, "", log.LstdFlags)
		if silentMode {
			logger.SetOutput(io.Discard)
		}

		opts := Options{
			ConfigPath:    configPath,
			ManifestPath:  defaultManifestPath,
			RepositoryURL: repositoryURL,
			DevToToken:    devToToken,
			Interval:      defaultPublishInterval,
			Silent:        silentMode,
		}

		pipeline := NewPipeline(NewDevToPublisher(), opts.Interval, logger)

		statuses, err := run(opts, pipeline)
		if err != nil {
			return err
		}

		if !silentMode {
			fmt.Println(summarize(statuses))
		}
		if anyFailed(statuses) {
			return fmt.Errorf("at least one article failed to publish")
		}
		return nil
	},
}

// run resolves the repository, loads the articles configuration and drives
// the pipeline. Configuration errors fail here, before any network call.
func run(opts Options, pipeline *Pipeline) ([]ArticlePublishedStatus, error) {
	repo, err := resolveRepository(opts.RepositoryURL, opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	configs, err := loadArticlesConfig(opts.ConfigPath, repo)
	if err != nil {
		return nil, err
	}

	return pipeline.Run(context.Background(), configs, opts.DevToToken)
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", defaultArticlesConfigPath, "Path to the articles configuration file")
	rootCmd.Flags().StringVar(&devToToken, "dev-to-token", "", "dev.to API key")
	rootCmd.Flags().StringVar(&repositoryURL, "repository-url", "", "Repository URL used to resolve relative image links")
	rootCmd.Flags().BoolVar(&silentMode, "silent", false, "Suppress console output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
