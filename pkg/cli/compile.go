package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gomeson/gomeson/pkg/compile"
	"github.com/gomeson/gomeson/pkg/logger"
	"github.com/gomeson/gomeson/pkg/notifier"
	"github.com/gomeson/gomeson/pkg/process"
	"github.com/gomeson/gomeson/pkg/types"
)

// NewCompileCmd creates the compile command
func NewCompileCmd() *cobra.Command {
	var (
		jobs        int
		loadAverage int
		clean       bool
		buildDir    string
		notify      bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Build a configured build tree with its native driver",
		Long: `Determine which backend the build directory was configured for,
locate its build driver and run it. The driver's output streams are
passed through untouched and its exit status becomes gomeson's own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("notify") {
				notify = viper.GetBool("notify")
			}

			opts := types.CompileOptions{
				Jobs:        jobs,
				LoadAverage: loadAverage,
				Clean:       clean,
				BuildDir:    buildDir,
				Notify:      notify,
			}
			return runCompile(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"The number of worker jobs to run (if supported). If the value is less than 1 the build program will guess.")
	cmd.Flags().IntVarP(&loadAverage, "load-average", "l", 0,
		"The system load average to try to maintain (if supported)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean the build directory.")
	cmd.Flags().StringVarP(&buildDir, "builddir", "C", ".",
		"The directory containing build files to be built.")
	cmd.Flags().BoolVar(&notify, "notify", false,
		"Send a desktop notification when the build finishes.")

	return cmd
}

func runCompile(cmd *cobra.Command, opts types.CompileOptions) error {
	log := logger.CreateLogger("", verbosity)
	runner := process.NewExecRunner()
	n := notifier.New(notifier.Config{Enabled: opts.Notify}, log)

	c := compile.New(log, runner, n)
	status, err := c.Compile(cmd.Context(), opts)
	if err != nil {
		console.Error(err.Error())
		return err
	}
	if status != 0 {
		// Relay the driver's status bit-for-bit; main unwraps this
		return &process.ExitError{Code: status}
	}
	return nil
}
