package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raybunnage/prestag/internal/dimensions"
	"github.com/raybunnage/prestag/internal/taxonomy"
)

func newDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List the registered dimensions and their definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := dimensions.NewRegistry()
			jsonOut, _ := cmd.Flags().GetBool("json")

			if jsonOut {
				defs := make([]any, 0)
				for _, d := range registry.All() {
					defs = append(defs, d.Definition())
				}
				return json.NewEncoder(os.Stdout).Encode(defs)
			}

			for _, d := range registry.All() {
				def := d.Definition()
				fmt.Printf("%-20s %-13s %s\n", def.Name, def.Type, def.Description)
			}
			return nil
		},
	}
}

func newTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the topic taxonomy tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := taxonomy.Default()
			jsonOut, _ := cmd.Flags().GetBool("json")

			if jsonOut {
				type nodeInfo struct {
					ID       string   `json:"id"`
					Name     string   `json:"name"`
					Path     []string `json:"path"`
					Depth    int      `json:"depth"`
					Keywords []string `json:"keywords,omitempty"`
				}
				var nodes []nodeInfo
				tree.Walk(func(n *taxonomy.Node) {
					nodes = append(nodes, nodeInfo{
						ID: n.ID, Name: n.Name, Path: n.Path(),
						Depth: n.Depth(), Keywords: n.Keywords,
					})
				})
				return json.NewEncoder(os.Stdout).Encode(nodes)
			}

			tree.Walk(func(n *taxonomy.Node) {
				indent := strings.Repeat("  ", n.Depth()-1)
				fmt.Printf("%s%s (%s)\n", indent, n.Name, n.ID)
			})
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dimension> <value>",
		Short: "Check whether a value is valid for a dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			ok, err := engine.Validate(args[0], parseValue(args[1]))
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]bool{"valid": ok})
			}
			if ok {
				fmt.Println("valid")
			} else {
				fmt.Println("invalid")
			}
			return nil
		},
	}
}

func newDisplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display <dimension> <value>",
		Short: "Render a stored value as its human-readable label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			display, err := engine.Display(args[0], parseValue(args[1]))
			if err != nil {
				return err
			}
			fmt.Println(display)
			return nil
		},
	}
}

func newSimilarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similar <dimension> <value1> <value2>",
		Short: "Compute the similarity of two values on a dimension",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			score, err := engine.Similarity(args[0], parseValue(args[1]), parseValue(args[2]))
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]float64{"similarity": score})
			}
			fmt.Printf("%.3f\n", score)
			return nil
		},
	}
}

// parseValue interprets a CLI value argument: a number becomes float64,
// a comma-separated list becomes []string, anything else stays a string.
func parseValue(raw string) any {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return raw
}
