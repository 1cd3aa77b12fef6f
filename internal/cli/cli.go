// Package cli implements the intervals command, which evaluates interval
// algebra on operands given in interval notation.
package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrIntegerOnly is returned by commands that enumerate values when operands
// are floats.
var ErrIntegerOnly = ierrors.New("command requires integer operands")

// app holds the state shared by all commands of one invocation.
type app struct {
	float   bool
	verbose bool
	noColor bool

	logger *zap.Logger
}

// Run executes the intervals command with args and returns the process exit
// code. Results are written to stdout, logs and diagnostics to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	defer func() {
		_ = a.logger.Sync()
	}()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.logger.Debug("command failed", zap.Error(err))

		diagnostic := color.New(color.FgRed, color.Bold)
		if a.noColor {
			diagnostic.DisableColor()
		}

		_, _ = diagnostic.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "intervals",
		Short:             "Evaluate interval algebra",
		Long:              "Evaluate interval algebra on operands written as [a, b], (a, b), [a, b), (a, b] or a single value.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.registerFlags(root.PersistentFlags())

	root.AddCommand(
		a.containsCommand(),
		a.includesCommand(),
		a.overlapsCommand(),
		a.intersectCommand(),
		a.encloseCommand(),
		a.gapCommand(),
		a.unionCommand(),
		a.measureCommand(),
		a.dilateCommand(),
		a.hullCommand(),
		a.iterCommand(),
		a.centerCommand(),
		a.iouCommand(),
		a.closureCommand(),
		a.interiorCommand(),
	)

	return root
}

func (a *app) registerFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&a.float, "float", false, "interpret operands as float64 instead of int64")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log evaluation steps to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")
}

// setup configures logging once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !a.verbose {
		return nil
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.DebugLevel)
	a.logger = zap.New(core).Named("intervals")

	a.logger.Debug("configured", zap.Bool("float", a.float), zap.String("command", cmd.Name()))

	return nil
}
