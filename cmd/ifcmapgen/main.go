// Package main provides the CLI entry point for ifcmapgen.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ifcmapgen/pkg/mapgen"
)

var (
	sourcePath   string
	outputDir    string
	configDir    string
	sheetName    string
	profileName  string
	validateOnly bool
	skipOptional bool
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := loadDefaults(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "ifcmapgen",
		Short: "Generate Civil 3D IFC property mapping files from an Excel source",
		Long: `ifcmapgen validates an Excel mapping source describing Civil 3D to IFC
property mappings and emits the property-set template JSON and flat CSV
consumed by the IFC export pipeline, mirroring both into the export tool's
configuration directory.`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&sourcePath, "source", viper.GetString("source"), "Path to the Excel source file")
	rootCmd.Flags().StringVar(&outputDir, "output", viper.GetString("output"), "Directory where intermediate mapping files are written")
	rootCmd.Flags().StringVar(&configDir, "config-dir", viper.GetString("config-dir"), "Directory that mirrors the export tool configuration")
	rootCmd.Flags().StringVar(&sheetName, "sheet", viper.GetString("sheet"), "Excel sheet to read (default: first sheet)")
	rootCmd.Flags().StringVar(&profileName, "profile", viper.GetString("profile"), "Variant policy: civil or infra")
	rootCmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Validate the Excel source without writing any output files")
	rootCmd.Flags().BoolVar(&skipOptional, "skip-optional", false, "Suppress the auxiliary version and export-config documents")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDefaults seeds flag defaults from viper and an optional
// ifcmapgen.yaml in the working directory.
func loadDefaults() error {
	viper.SetDefault("source", "mapping/mapping_source.xlsx")
	viper.SetDefault("output", "mapping")
	viper.SetDefault("config-dir", "IfcInfraExportConfiguration")
	viper.SetDefault("profile", string(mapgen.ProfileCivil))

	viper.SetConfigName("ifcmapgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	var profile mapgen.Profile
	switch profileName {
	case string(mapgen.ProfileCivil):
		profile = mapgen.ProfileCivil
	case string(mapgen.ProfileInfra):
		profile = mapgen.ProfileInfra
	default:
		return fmt.Errorf("invalid profile: %s (must be civil or infra)", profileName)
	}

	opts := mapgen.Options{
		Sheet:        sheetName,
		Profile:      profile,
		SkipOptional: skipOptional,
	}

	records, err := mapgen.Load(sourcePath, opts)
	if err != nil {
		return err
	}

	if validateOnly {
		slog.Info("validation succeeded", "records", len(records), "source", sourcePath)
		fmt.Printf("Validated %d records from %s.\n", len(records), sourcePath)
		return nil
	}

	result, err := mapgen.Generate(records, sourcePath, outputDir, configDir, opts)
	if err != nil {
		return err
	}

	for _, path := range result.Produced {
		slog.Info("wrote mapping file", "path", path)
	}
	for _, path := range result.Mirrored {
		slog.Info("mirrored configuration file", "path", path)
	}
	fmt.Printf("Generated mapping files for %d records.\n", len(records))
	return nil
}
