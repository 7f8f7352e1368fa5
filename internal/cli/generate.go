package cli

import (
	"encoding/json"
	"fmt"

	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/services"

	"github.com/spf13/cobra"
)

var (
	generateSeedPath  string
	generateOutPath   string
	generateMissionKm float64
	generateMaxWeight float64
	generateBayLength float64
	generateBayWidth  float64
	generateBayHeight float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a load plan from a request seed file",
	Long:  `Run the prioritize/pack/balance pipeline over a seed file and write the plan as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadItemsFromSeed(generateSeedPath)
		if err != nil {
			return err
		}

		profile := domain.UH60BlackHawk()
		if generateMaxWeight > 0 {
			profile.MaxWeightKg = generateMaxWeight
		}
		if generateBayLength > 0 {
			profile.BayLengthM = generateBayLength
		}
		if generateBayWidth > 0 {
			profile.BayWidthM = generateBayWidth
		}
		if generateBayHeight > 0 {
			profile.BayHeightM = generateBayHeight
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		ordered, err := services.OrderByPriority(items)
		if err != nil {
			return err
		}
		placements, unplaced, quadrantWeights := services.PackItems(profile, ordered)
		plan := services.AssemblePlan(profile, placements, unplaced, quadrantWeights, generateMissionKm)

		PrintInfo(fmt.Sprintf("Packed %d of %d items, %.1f kg (%.1f%% of capacity), balance %.2f",
			len(plan.Placements), len(items), plan.TotalWeightKg,
			plan.WeightUtilization*100, plan.BalanceScore))

		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal plan: %w", err)
		}
		return writeOutput(generateOutPath, append(out, '\n'))
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateSeedPath, "seed", "data/seeds/requests.json", "request seed JSON file")
	generateCmd.Flags().StringVar(&generateOutPath, "out", "-", "output path for the plan JSON (- for stdout)")
	generateCmd.Flags().Float64Var(&generateMissionKm, "mission-km", services.DefaultMissionKm, "round-trip mission distance in km")
	generateCmd.Flags().Float64Var(&generateMaxWeight, "max-weight", 0, "override max cargo weight (kg)")
	generateCmd.Flags().Float64Var(&generateBayLength, "bay-length", 0, "override bay length (m)")
	generateCmd.Flags().Float64Var(&generateBayWidth, "bay-width", 0, "override bay width (m)")
	generateCmd.Flags().Float64Var(&generateBayHeight, "bay-height", 0, "override bay height (m)")
}
