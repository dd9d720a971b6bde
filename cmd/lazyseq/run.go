package main

import (
	"fmt"
	"log"
	"time"

	goyaml "github.com/goccy/go-yaml"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentstation/lazyseq/pipeline"
)

var (
	dryRun   bool
	parallel int
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run <file.yaml> [file.yaml...]",
	Short: "Execute pipeline files",
	Long: `Load, validate, and execute one or more pipeline YAML files.

Each file gets its own evaluator, so multiple files may run concurrently;
results are reported in argument order regardless of completion order.`,
	Example: `  # Run a single pipeline
  lazyseq run primes.yaml

  # Validate without executing
  lazyseq run primes.yaml --dry-run

  # Run several pipelines, four at a time
  lazyseq run *.yaml --parallel 4

  # Emit results as JSON
  lazyseq run primes.yaml --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			return validateFiles(args)
		}

		start := time.Now()
		outcomes, err := pipeline.RunFiles(cmd.Context(), args, parallel)
		if err != nil {
			return err
		}
		if verbose {
			log.Printf("Executed %d pipeline(s) in %v", len(outcomes), time.Since(start))
		}

		return printOutcomes(outcomes)
	},
}

// validateFiles parses and validates each file without executing anything.
func validateFiles(paths []string) error {
	parser := pipeline.NewParser()
	for _, path := range paths {
		def, err := parser.ParseFile(path)
		if err != nil {
			return err
		}
		if verbose {
			log.Printf("Validated %s: pipeline %q, %d op(s), terminal %s",
				path, def.Name, len(def.Ops), def.Terminal.Type)
		}
	}
	fmt.Printf("%d pipeline(s) valid (dry run)\n", len(paths))
	return nil
}

func printOutcomes(outcomes []pipeline.Outcome) error {
	switch output {
	case jsonFormat:
		fmt.Println(oj.JSON(outcomes, &oj.Options{Indent: 2, Sort: true}))

	case yamlFormat:
		data, err := goyaml.Marshal(outcomes)
		if err != nil {
			return fmt.Errorf("marshal outcomes: %w", err)
		}
		fmt.Print(string(data))

	default: // text
		for _, out := range outcomes {
			fmt.Printf("%s (%s): %v\n", out.Pipeline, out.Terminal, out.Result)
		}
	}
	return nil
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate pipelines without executing")
	runCmd.Flags().IntVar(&parallel, "parallel", 0, "Max pipelines to run concurrently (0 = unlimited)")
	rootCmd.AddCommand(runCmd)
}
