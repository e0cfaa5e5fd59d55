package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raybunnage/prestag/internal/classify"
	"github.com/raybunnage/prestag/internal/models"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify text and print suggestions without persisting",
		Long: `Classify reads text from a file argument, --text, or stdin, runs it
through every registered dimension (or the --dimensions subset), and
prints each dimension's confidence-ranked suggestions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctx := contextFromFlags(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			names, _ := cmd.Flags().GetStringSlice("dimensions")
			if len(names) == 0 {
				names = cfg.Classify.Dimensions
			}

			var tags map[string][]models.DimensionValue
			if len(names) > 0 {
				tags, err = engine.ClassifyDimensions(text, ctx, names)
				if err != nil {
					return err
				}
			} else {
				tags = engine.Classify(text, ctx)
			}

			return printTags(cmd, engine, tags)
		},
	}

	cmd.Flags().String("text", "", "Text to classify (instead of file/stdin)")
	cmd.Flags().StringSlice("dimensions", nil, "Restrict to these dimensions")
	cmd.Flags().String("presenter-title", "", "Presenter credentials for the context side channel")
	return cmd
}

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <item-id> [file]",
		Short: "Classify text and persist the suggestions for an item",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := args[0]
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			ctx := contextFromFlags(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			st, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer st.Close()

			tagger := classify.NewTagger(engine, st)
			tags, err := tagger.TagItem(cmd.Context(), itemID, text, ctx)
			if err != nil {
				return err
			}

			return printTags(cmd, engine, tags)
		},
	}

	cmd.Flags().String("text", "", "Text to classify (instead of file/stdin)")
	cmd.Flags().String("presenter-title", "", "Presenter credentials for the context side channel")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show the persisted tags for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cfg)

			st, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer st.Close()

			tags, err := st.GetTags(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				return fmt.Errorf("no tags stored for %q", args[0])
			}
			return printTags(cmd, engine, tags)
		},
	}
}

// readInput resolves the classify/tag input: --text flag, file argument,
// or stdin ("-" or nothing piped in).
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// contextFromFlags assembles the context side channel from CLI flags.
func contextFromFlags(cmd *cobra.Command) models.Context {
	ctx := models.Context{}
	if title, _ := cmd.Flags().GetString("presenter-title"); title != "" {
		ctx["presenter_title"] = title
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

// printTags renders a classification result, as JSON or as a readable
// per-dimension listing with display labels.
func printTags(cmd *cobra.Command, engine *classify.Engine, tags map[string][]models.DimensionValue) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(tags)
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := tags[name]
		if len(values) == 0 {
			fmt.Printf("%s: (no suggestions)\n", name)
			continue
		}
		fmt.Printf("%s:\n", name)
		for _, v := range values {
			display, err := engine.Display(name, v.Value)
			if err != nil {
				display = fmt.Sprintf("%v", v.Value)
			}
			line := fmt.Sprintf("  %.2f  %s [%s]", v.Confidence, display, v.Source)
			if len(v.Evidence.MatchedTerms) > 0 {
				line += "  (" + strings.Join(v.Evidence.MatchedTerms, ", ") + ")"
			}
			fmt.Println(line)
		}
	}
	return nil
}
