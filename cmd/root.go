package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hotel-site/pkg/config"
	"hotel-site/pkg/logging"
	"hotel-site/pkg/services"
)

// Configuration flags
var (
	portNumber  string
	catalogFile string
	bucketName  string
	logLevel    string
)

var heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hotel-site",
		Short: "Hotel site serves the marketing site of a boutique hotel brand",
		Long: `Hotel site is a command line application that serves the marketing site of a
boutique hotel brand and lets you inspect its gallery from the terminal.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "catalog", "c", "", "Set the CATALOG_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListGalleryCmd())
	rootCmd.AddCommand(newShowItemCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newUnpublishCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	config.LoadDotEnv()

	// Set environment variables from flags if provided
	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if catalogFile != "" {
		os.Setenv("CATALOG_FILE", catalogFile)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// setup loads the configuration and initializes the site service
func setup() (*config.Config, *log.Logger, *services.Service, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.Stderr(cfg.LogLevel)

	if err := services.InitService(cfg, logger); err != nil {
		return nil, nil, nil, err
	}
	svc, err := services.Default()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, svc, nil
}
