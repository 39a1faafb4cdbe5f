// Package cmd provides the root command and CLI setup for strmut.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/strmut/internal/adapter"
	"gooze.dev/pkg/strmut/internal/controller"
	"gooze.dev/pkg/strmut/internal/domain"
	"gooze.dev/pkg/strmut/internal/domain/mutagens"
	m "gooze.dev/pkg/strmut/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// workflow is built on first use, once flags and config are resolved.
// Tests replace it with a mock.
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const rootLongDescription = `strmut is a mutation operator for Go that replaces string literals with
randomized content, one literal per run, so you can check whether your
test suite notices the change.

` + pathPatternsHelp

const listLongDescription = `List every string literal that can be mutated in the given paths
(default: current module) and save the candidates as reports.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strmut",
		Short: "String literal mutation tool for Go",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

// newRootCmd returns a fresh root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for reports and mutants",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().Int(spreadFlagName, mutagens.DefaultLengthSpread, "half-width of the replacement length window")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(spreadFlagName), mutatorSpreadKey)

	cmd.PersistentFlags().String(seedFlagName, "", "seed for reproducible replacements (empty = random)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedFlagName), mutatorSeedKey)

	cmd.PersistentFlags().Bool(singlePassFlagName, false, "emit the registered replacement instead of re-randomizing it")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(singlePassFlagName), mutatorSinglePassKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the injected workflow or builds one from config.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	factory, err := mutagens.NewStringMutator(randomizationPolicy())
	if err != nil {
		return nil, err
	}

	var opts []domain.MutagenOption

	seed, ok, err := parseSeed(viper.GetString(mutatorSeedKey))
	if err != nil {
		return nil, err
	}

	if ok {
		opts = append(opts, domain.WithSeed(seed))
	}

	mutagen := domain.NewMutagen(goFileAdapter, fsAdapter, factory, opts...)
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(fsAdapter, reportStore, ui, mutagen), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
