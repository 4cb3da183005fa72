package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tensora/freemod"
	"github.com/katalvlaran/tensora/ring"
	"github.com/katalvlaran/tensora/tensor"
)

var (
	hopfWord   string
	hopfConfig string
)

var hopfCmd = &cobra.Command{
	Use:   "hopf",
	Short: "Evaluate the Hopf structure maps on a word over the basis",
	Long: `Build the tensor algebra of the configured base module and print the
degree, antipode, counit and coproduct split count of the monomial indexed
by the given word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(hopfConfig)
		if err != nil {
			return err
		}
		letters := splitWord(hopfWord)
		logger.Debug("building tensor algebra",
			zap.String("ring", cfg.Ring),
			zap.Strings("basis", cfg.Basis),
			zap.Strings("word", letters))

		switch cfg.Ring {
		case "integer":
			return runHopf(ring.Integers(), cfg.Basis, letters)
		case "real":
			return runHopf(ring.Reals(), cfg.Basis, letters)
		default:
			return runHopf(ring.Rationals(), cfg.Basis, letters)
		}
	},
}

// splitWord parses "a,b,c" into its letters, tolerating blanks.
func splitWord(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	letters := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			letters = append(letters, p)
		}
	}
	return letters
}

// runHopf evaluates and prints the structure maps for one monomial; the
// coefficient type follows the chosen ring.
func runHopf[C any](r ring.Ring[C], basis, letters []string) error {
	m, err := freemod.New(r, basis)
	if err != nil {
		return err
	}
	ta, err := tensor.New(m)
	if err != nil {
		return err
	}
	w, err := ta.FromIndices(letters)
	if err != nil {
		return err
	}

	fmt.Println("word     :", ta.Format(w))
	fmt.Println("degree   :", w.MaxDegree())
	fmt.Println("antipode :", ta.Format(ta.Antipode(w)))
	fmt.Println("counit   :", r.Format(ta.Counit(w)))
	fmt.Println("coproduct:", ta.Coproduct(w).Len(), "splits")
	return nil
}

func init() {
	hopfCmd.Flags().StringVarP(&hopfWord, "word", "w", "", "comma-separated basis letters, e.g. a,b,c")
	hopfCmd.Flags().StringVarP(&hopfConfig, "config", "c", "", "TOML config selecting ring and basis")
	rootCmd.AddCommand(hopfCmd)
}
