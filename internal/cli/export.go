package cli

import (
	"fmt"

	"airlift-load-service/internal/adapters/export"

	"github.com/spf13/cobra"
)

var (
	exportPlanPath string
	exportOutPath  string
)

var exportCmd = &cobra.Command{
	Use:       "export {pdf|scad}",
	Short:     "Export a generated plan as a crew PDF or OpenSCAD model",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"pdf", "scad"},
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlanFromFile(exportPlanPath)
		if err != nil {
			return err
		}

		var data []byte
		switch args[0] {
		case "pdf":
			data, err = export.RenderLoadingPDF(plan)
		case "scad":
			data, err = export.RenderOpenSCAD(plan)
		default:
			return fmt.Errorf("unknown export format %q (want pdf or scad)", args[0])
		}
		if err != nil {
			return err
		}

		if err := writeOutput(exportOutPath, data); err != nil {
			return err
		}
		if exportOutPath != "" && exportOutPath != "-" {
			PrintInfo(fmt.Sprintf("Wrote %s (%d bytes)", exportOutPath, len(data)))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPlanPath, "plan", "plan.json", "plan JSON produced by loadctl generate")
	exportCmd.Flags().StringVar(&exportOutPath, "out", "-", "output file (- for stdout)")
}
