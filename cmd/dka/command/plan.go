package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/dka/protocol"
)

var (
	planWeight    string
	planAge       string
	planGlucose   string
	planPH        string
	planHCO3      string
	planSodium    string
	planPotassium string
	planGCS       string
	planShock     bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Derive a DKA management plan",
	Long:  "The plan command derives the ISPAD 2022 fluid, electrolyte and insulin plan from the given measurements",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printPlan) },
}

func printPlan(logger *zap.SugaredLogger) error {
	form := protocol.Form{
		WeightKg:         planWeight,
		AgeYears:         planAge,
		GlucoseMgDl:      planGlucose,
		PHVenous:         planPH,
		HCO3MmolL:        planHCO3,
		SodiumMmolL:      planSodium,
		PotassiumMmolL:   planPotassium,
		GlasgowComaScore: planGCS,
		InShock:          planShock,
	}

	result := protocol.Calculate(form.Inputs())
	if result == nil {
		return fmt.Errorf("incomplete inputs: weight, glucose and venous pH are required")
	}
	logger.Debugw("derived dka plan", "severity", result.Severity)

	fmt.Printf("Severity:          %s (%.0f%% dehydration)\n", result.Severity, result.DehydrationFraction*100)
	fmt.Printf("Bolus:             %d ml\n", result.BolusVolumeMl)
	fmt.Printf("Maintenance (24h): %d ml\n", result.Maintenance24hMl)
	fmt.Printf("Deficit (48h):     %d ml\n", result.DeficitVolumeMl)
	fmt.Printf("Infusion rate:     %d ml/hr\n", result.HourlyRateMlPerHr)
	fmt.Printf("Insulin standard:  %.2f units/hr\n", result.InsulinStandardUnitsPerHr)
	fmt.Printf("Insulin low:       %.2f units/hr\n", result.InsulinLowUnitsPerHr)
	fmt.Printf("Corrected sodium:  %d mmol/L\n", result.CorrectedSodiumMmolL)
	fmt.Printf("Potassium:         %s\n", result.PotassiumStatus)
	if result.PotassiumStatus == protocol.PotassiumCriticalLow {
		fmt.Println("Potassium is critically low; replete before starting insulin.")
	}

	return nil
}

func init() {
	planCmd.Flags().StringVar(&planWeight, "weight", "", "Weight (kg)")
	planCmd.Flags().StringVar(&planAge, "age", "", "Age (years)")
	planCmd.Flags().StringVar(&planGlucose, "glucose", "", "Glucose (mg/dL)")
	planCmd.Flags().StringVar(&planPH, "ph", "", "Venous pH")
	planCmd.Flags().StringVar(&planHCO3, "hco3", "", "Bicarbonate (mmol/L)")
	planCmd.Flags().StringVar(&planSodium, "sodium", "", "Sodium (mmol/L)")
	planCmd.Flags().StringVar(&planPotassium, "potassium", "", "Potassium (mmol/L)")
	planCmd.Flags().StringVar(&planGCS, "gcs", "", "Glasgow coma score")
	planCmd.Flags().BoolVar(&planShock, "shock", false, "Patient is in shock")
	rootCmd.AddCommand(planCmd)
}
