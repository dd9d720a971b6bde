package main

import (
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information about the lazyseq CLI.`,
	Example: `  # Show version
  lazyseq version

  # Show version in JSON format
  lazyseq version --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		versionInfo := map[string]string{
			"version":   version,
			"commit":    commit,
			"buildDate": buildDate,
			"goVersion": goVersion,
		}

		switch output {
		case jsonFormat:
			fmt.Println(oj.JSON(versionInfo, &oj.Options{Indent: 2, Sort: true}))

		case yamlFormat:
			data, err := goyaml.Marshal(versionInfo)
			if err != nil {
				return fmt.Errorf("failed to marshal version info: %w", err)
			}
			fmt.Print(string(data))

		default: // text
			fmt.Printf("lazyseq version %s\n", version)
			if version != "dev" {
				fmt.Printf("  commit:     %s\n", commit)
				fmt.Printf("  built:      %s\n", buildDate)
				fmt.Printf("  go version: %s\n", goVersion)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
