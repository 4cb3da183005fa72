package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tensora/imports"
)

var (
	importsDir         string
	importsModule      string
	importsAggregators []string
)

var importsCmd = &cobra.Command{
	Use:   "imports NAME",
	Short: "Suggest an import statement for an identifier",
	Long: `Scan a Go source tree into a module graph and print the import
statement for the package best binding NAME. Heuristic warnings (ambiguous
bindings, aggregator-only names, aliases) go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		g, err := imports.Scan(importsDir, &imports.ScanOptions{ModulePath: importsModule})
		if err != nil {
			return err
		}
		logger.Debug("scanned module graph",
			zap.String("root", importsDir),
			zap.Int("packages", g.Len()))

		st, warns, err := imports.Suggest(g, name, &imports.Options{Aggregators: importsAggregators})
		if err != nil {
			return err
		}
		for _, w := range warns {
			fmt.Fprintln(os.Stderr, "  ** Warning **:", w)
		}
		fmt.Println(st.Render())
		if st.Name != "" {
			fmt.Println("// use:", st.Qualified())
		}
		return nil
	},
}

func init() {
	importsCmd.Flags().StringVarP(&importsDir, "dir", "d", ".", "root of the Go source tree to scan")
	importsCmd.Flags().StringVarP(&importsModule, "module", "m", "", "module path prefixed to package directories")
	importsCmd.Flags().StringSliceVar(&importsAggregators, "aggregator", []string{"all"}, "path elements marking re-export packages")
	rootCmd.AddCommand(importsCmd)
}
