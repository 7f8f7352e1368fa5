package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for loadctl.
var rootCmd = &cobra.Command{
	Use:     "loadctl",
	Version: "dev",
	Short:   "Offline cargo load planning",
	Long: `loadctl generates balanced cargo loading plans without a running server.

It reads a request seed file, runs the same prioritize/pack/balance pipeline
as the service, and can export the result as a crew PDF or an OpenSCAD model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
}
