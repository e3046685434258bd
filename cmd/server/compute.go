package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// Output formats for the compute command
const (
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

var (
	computeFormat string
	computeRoll   bool
	computeStyle  string
)

var computeCmd = &cobra.Command{
	Use:   "compute <selection.yaml>",
	Short: "Compute a character sheet from a selection file",
	Long: `Compute hit points, armor class, initiative and proficiencies for the
selection described in a YAML file. Armor details are fetched from the D&D 5e API.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&computeFormat, "format", formatMarkdown, "Output format: json, yaml or markdown")
	computeCmd.Flags().BoolVar(&computeRoll, "roll", false, "Roll hit dice after first level instead of taking the average")
	computeCmd.Flags().StringVar(&computeStyle, "style", "dark", "Glamour style used for markdown output")
}

func runCompute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	selection, err := readSelectionFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.cleanup()

	out, err := deps.sheets.ComputeSheet(ctx, &sheetsvc.ComputeSheetInput{
		Selection:     selection,
		RollHitPoints: computeRoll,
	})
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), computeFormat, computeStyle, out.Result)
}

func readSelectionFile(path string) (*dnd5e.Selection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read selection file %s", path)
	}

	var selection dnd5e.Selection
	if err := yaml.Unmarshal(raw, &selection); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse selection file")
	}

	return &selection, nil
}

// sheetOutput is the serialized form of a computed sheet
type sheetOutput struct {
	Stats       *dnd5e.DerivedStats      `json:"stats" yaml:"stats"`
	Tools       *dnd5e.ProficiencyBundle `json:"tools" yaml:"tools"`
	Skills      *dnd5e.ProficiencyBundle `json:"skills" yaml:"skills"`
	Warnings    []string                 `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	ArmorStatus dnd5e.ArmorDetailStatus  `json:"armor_status" yaml:"armor_status"`
}

func writeResult(w io.Writer, format, style string, result *sheetsvc.Result) error {
	if result == nil {
		return errors.Internal("no result computed")
	}

	out := sheetOutput{
		Stats:       result.Stats,
		Tools:       result.Tools,
		Skills:      result.Skills,
		Warnings:    result.Warnings,
		ArmorStatus: result.ArmorStatus,
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case formatMarkdown:
		rendered, err := glamour.Render(renderMarkdown(result), style)
		if err != nil {
			return errors.Wrap(err, "failed to render markdown")
		}
		_, err = fmt.Fprint(w, rendered)
		return err
	default:
		return errors.InvalidArgumentf("unknown format %q", format)
	}
}
