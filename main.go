package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tabprep/pkg/dataset"
	"tabprep/pkg/pipeline"
)

func FitCommand() *cobra.Command {

	var trainFile string
	var configFile string
	var outputFile string
	var pipelineFile string

	var cmd = &cobra.Command{
		Use:   "fit -i trainFile -c configFile [-o outputFile] [-p pipelineFile]",
		Short: "Fits the configured preprocessing pipeline on the training data and optionally writes the transformed data and the fitted pipeline",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := pipeline.LoadConfig(configFile)
			if err != nil {
				return err
			}
			p, result, err := pipeline.Fit(*config, trainFile)
			if err != nil {
				return err
			}
			if outputFile != "" {
				if err := writeResult(result, outputFile); err != nil {
					return err
				}
			}
			if pipelineFile != "" {
				file, err := os.Create(pipelineFile)
				if err != nil {
					return fmt.Errorf("creating pipeline file %s: %w", pipelineFile, err)
				}
				defer file.Close()
				if err := p.Save(file); err != nil {
					return fmt.Errorf("saving pipeline to %s: %w", pipelineFile, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&trainFile, "train-file", "i", "", "name of train file")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "name of pipeline config file")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "name of the file to write transformed data to (optional)")
	cmd.Flags().StringVarP(&pipelineFile, "pipeline-file", "p", "", "name of the file to save the fitted pipeline to (optional)")

	_ = cmd.MarkFlagRequired("train-file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func ApplyCommand() *cobra.Command {

	var pipelineFile string
	var inputFile string
	var outputFile string

	var cmd = &cobra.Command{
		Use:   "apply -p pipelineFile -i inputFile -o outputFile",
		Short: "Applies a previously fitted pipeline to the specified data input",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(pipelineFile)
			if err != nil {
				return fmt.Errorf("opening pipeline file %s: %w", pipelineFile, err)
			}
			defer file.Close()
			p, err := pipeline.Load(file)
			if err != nil {
				return fmt.Errorf("loading pipeline from %s: %w", pipelineFile, err)
			}
			result, err := p.Apply(inputFile)
			if err != nil {
				return err
			}
			return writeResult(result, outputFile)
		},
	}

	cmd.Flags().StringVarP(&pipelineFile, "pipeline-file", "p", "", "name of fitted pipeline file")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "name of data input file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "name of output file")

	_ = cmd.MarkFlagRequired("pipeline-file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func DescribeCommand() *cobra.Command {

	var inputFile string
	var targetColumn string

	var cmd = &cobra.Command{
		Use:   "describe -i inputFile -t targetColumn",
		Short: "Logs per-feature summary statistics for a numeric dataset",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.FromCSV[string](inputFile, targetColumn)
			if err != nil {
				return err
			}
			for _, summary := range dataset.Summarize(ds) {
				log.Info().Str("Feature", summary.Column).
					Float64("Min", summary.Min).
					Float64("Max", summary.Max).
					Float64("Mean", summary.Mean).
					Float64("StdDev", summary.StdDev).
					Msg("")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "name of data input file")
	cmd.Flags().StringVarP(&targetColumn, "target-column", "t", "", "target column")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("target-column")

	return cmd
}

func writeResult(result *pipeline.Result, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outputFile, err)
	}
	defer file.Close()
	if err := result.WriteTo(file); err != nil {
		return fmt.Errorf("writing output to %s: %w", outputFile, err)
	}
	return nil
}

var logLevel string
var logFormat string

func main() {

	Main := &cobra.Command{Use: "tabprep", PersistentPreRun: setupLogging}

	Main.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	Main.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	Main.AddCommand(FitCommand())
	Main.AddCommand(ApplyCommand())
	Main.AddCommand(DescribeCommand())

	if err := Main.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		panic("Invalid logging level specified")
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		panic("Invalid log format specified")

	}

}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
