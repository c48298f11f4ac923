package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/abhisek/thermoviz/internal/autoplay"
	"github.com/abhisek/thermoviz/internal/diagram"
	"github.com/abhisek/thermoviz/internal/plot"
	"github.com/abhisek/thermoviz/internal/thermo"
	"github.com/spf13/cobra"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Print a diagram to the terminal",
}

var diagramReactionCmd = &cobra.Command{
	Use:   "reaction",
	Short: "Reaction energy diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := thermo.DefaultDiagramConfig()
		var err error
		if c.ReactantEnergy, err = energyFlag(cmd, "reactant"); err != nil {
			return err
		}
		if c.ProductEnergy, err = energyFlag(cmd, "product"); err != nil {
			return err
		}
		if c.ActivationEnergy, err = energyFlag(cmd, "ea"); err != nil {
			return err
		}
		if noEa, _ := cmd.Flags().GetBool("no-activation"); noEa {
			c.ShowActivation = false
		}
		if free, _ := cmd.Flags().GetBool("free-energy"); free {
			c.View = thermo.ViewFreeEnergy
		}
		if key, _ := cmd.Flags().GetString("sample"); key != "" {
			s, ok := thermo.LookupSample(key)
			if !ok {
				return fmt.Errorf("unknown sample %q", key)
			}
			c = s.Apply(c)
			fmt.Printf("%s: %s\n", s.Name, s.Equation)
		}

		path := thermo.ComputeReactionPath(c)
		if asJSON(cmd) {
			return printJSON(path)
		}
		w, h := chartSize(cmd)
		return printChart(cmd, diagram.Reaction(path, w, h))
	},
}

type heatingState struct {
	Temperature float64             `json:"temperature"`
	Cooling     bool                `json:"cooling"`
	Phase       thermo.Phase        `json:"phase"`
	MarkerX     float64             `json:"markerX"`
	Process     thermo.Process      `json:"process"`
	Molecular   thermo.Molecular    `json:"molecular"`
	Curve       []thermo.CurvePoint `json:"curve"`
}

var diagramHeatingCmd = &cobra.Command{
	Use:   "heating",
	Short: "Heating or cooling curve of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, err := finiteFlag(cmd, "temp")
		if err != nil {
			return err
		}
		cooling, _ := cmd.Flags().GetBool("cooling")
		temp = thermo.ClampTemperature(temp)

		if play, _ := cmd.Flags().GetBool("play"); play {
			speed, err := finiteFlag(cmd, "speed")
			if err != nil {
				return err
			}
			return playHeating(cmd, autoplay.NewSequence(temp, speed, cooling))
		}

		if asJSON(cmd) {
			phase := thermo.ClassifyPhase(temp)
			return printJSON(heatingState{
				Temperature: temp,
				Cooling:     cooling,
				Phase:       phase,
				MarkerX:     thermo.MarkerX(temp, cooling),
				Process:     thermo.ProcessInfo(temp, cooling),
				Molecular:   thermo.MolecularParams(phase, temp),
				Curve:       thermo.CurvePoints(cooling),
			})
		}

		p := thermo.ProcessInfo(temp, cooling)
		fmt.Printf("%.1f °C  %s  %s\n%s\n", temp, p.Phase, p.Name, p.Energy)
		w, h := chartSize(cmd)
		return printChart(cmd, diagram.Heating(temp, cooling, w, h))
	},
}

// playHeating steps the temperature until the end of the curve or until
// the command is interrupted, printing one line per tick.
func playHeating(cmd *cobra.Command, seq autoplay.Sequence) error {
	last := thermo.Phase("")
	runner := autoplay.NewRunner(seq, cfg.AutoplayInterval, func(s autoplay.Sequence) {
		phase := thermo.ClassifyPhase(s.Temp)
		line := fmt.Sprintf("%6.1f °C  %s", s.Temp, phase)
		if phase != last {
			line += "  ← " + thermo.ProcessInfo(s.Temp, s.Cooling).Name
			last = phase
		}
		fmt.Println(line)
	})
	runner.Start(cmd.Context())
	<-runner.Done()

	if final := runner.Current(); final.Done() {
		fmt.Printf("Reached %.0f °C.\n", final.Bound())
	} else {
		fmt.Printf("Stopped at %.1f °C.\n", final.Temp)
	}
	return nil
}

var diagramHessCmd = &cobra.Command{
	Use:   "hess",
	Short: "Hess's Law energy path for an example",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := walkthroughFromFlags(cmd)
		if err != nil {
			return err
		}
		path := thermo.ComputeHessPath(w.Steps(), 0)
		if asJSON(cmd) {
			return printJSON(path)
		}
		fmt.Printf("Combined ΔH = %.1f kJ (target %.1f kJ)\n", w.Combined(), w.Example().TargetDeltaH)
		width, height := chartSize(cmd)
		return printChart(cmd, diagram.Hess(path, width, height))
	},
}

// maxEnergyFlag bounds energies given on the command line so that sums
// such as reactant + Ea stay finite.
const maxEnergyFlag = 1e9

// finiteFlag reads a float flag, rejecting NaN and ±Inf.
func finiteFlag(cmd *cobra.Command, name string) (float64, error) {
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("--%s must be a finite number", name)
	}
	return v, nil
}

func energyFlag(cmd *cobra.Command, name string) (float64, error) {
	v, err := finiteFlag(cmd, name)
	if err != nil {
		return 0, err
	}
	if math.Abs(v) > maxEnergyFlag {
		return 0, fmt.Errorf("--%s must be within ±%g kJ/mol", name, maxEnergyFlag)
	}
	return v, nil
}

func chartSize(cmd *cobra.Command) (int, int) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	return w, h
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printChart(cmd *cobra.Command, ch *plot.Chart) error {
	if ch == nil {
		return fmt.Errorf("chart area too small; use --width ≥ 20 and --height ≥ 8")
	}
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		fmt.Println(ch.String())
	} else {
		fmt.Println(ch.Render())
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{diagramReactionCmd, diagramHeatingCmd, diagramHessCmd} {
		c.Flags().Int("width", 80, "Chart width in columns")
		c.Flags().Int("height", 24, "Chart height in rows")
		c.Flags().Bool("plain", false, "Print without colours")
		c.Flags().Bool("json", false, "Print the computed geometry as JSON")
	}

	diagramReactionCmd.Flags().Float64("reactant", thermo.DefaultReactantEnergy, "Reactant energy (kJ/mol)")
	diagramReactionCmd.Flags().Float64("product", thermo.DefaultReactantEnergy+thermo.DefaultExothermicDelta, "Product energy (kJ/mol)")
	diagramReactionCmd.Flags().Float64("ea", thermo.DefaultActivationEnergy, "Activation energy (kJ/mol)")
	diagramReactionCmd.Flags().Bool("no-activation", false, "Hide the transition state")
	diagramReactionCmd.Flags().Bool("free-energy", false, "Label the y axis as free energy")
	diagramReactionCmd.Flags().String("sample", "", "Load a sample reaction: combustion, neutralization, photosynthesis, decomposition")

	diagramHeatingCmd.Flags().Float64("temp", thermo.DefaultTemperature, "Temperature (°C), clamped to -50..150")
	diagramHeatingCmd.Flags().Bool("cooling", false, "Show the cooling curve")
	diagramHeatingCmd.Flags().Bool("play", false, "Step the temperature until the end of the curve")
	diagramHeatingCmd.Flags().Float64("speed", autoplay.DefaultSpeed, "°C per tick when playing (0.5-5)")

	addStepFlags(diagramHessCmd)

	diagramCmd.AddCommand(diagramReactionCmd)
	diagramCmd.AddCommand(diagramHeatingCmd)
	diagramCmd.AddCommand(diagramHessCmd)
}
