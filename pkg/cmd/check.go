package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dreal-go/dreal/pkg/icp"
	"github.com/dreal-go/dreal/pkg/icp/demo"
	"github.com/dreal-go/dreal/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// checkCmd decides delta-satisfiability of one catalogue problem.
var checkCmd = &cobra.Command{
	Use:   "check [flags] problem",
	Short: "Decide delta-satisfiability of a built-in demo problem.",
	Long: `Decide delta-satisfiability of a built-in demo problem.
	Run "dreal check --list" to see the available problems.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if getFlag(cmd, "list") {
			fmt.Print(demo.Describe())
			return
		}

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		problem, ok := demo.Lookup(args[0])
		if !ok {
			fmt.Printf("unknown problem %q; run with --list to see available problems\n", args[0])
			os.Exit(1)
		}

		cfg := icp.DefaultConfig()
		cfg.Precision = getFloat64(cmd, "precision")
		cfg.NumberOfJobs = getInt(cmd, "jobs")
		cfg.UsePolytope = !getFlag(cmd, "no-polytope")

		if getString(cmd, "strategy") == "gradient" {
			cfg.BranchingStrategy = icp.GradientDescent
		}

		perf := util.NewPerfStats()

		result, stats, err := icp.CheckSat(context.Background(), problem.Build(), cfg)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		perf.Log(fmt.Sprintf("check %s", args[0]))
		printResult(problem.Name, result, stats)
	},
}

func printResult(name string, result icp.Result, stats icp.SearchStats) {
	verdict := result.Verdict.String()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		colour := "\033[32m" // green
		if result.Verdict == icp.Unsat {
			colour = "\033[31m" // red
		}

		verdict = colour + verdict + "\033[0m"
	}

	fmt.Printf("%s: %s (prunes=%d, bisects=%d, max-depth=%d)\n",
		name, verdict, stats.NumPrune, stats.NumBisect, stats.MaxDepth)

	if result.Verdict == icp.Sat {
		witness := result.Witness.Unwrap()
		for _, v := range witness.Variables() {
			fmt.Printf("  %s = %s\n", v.Name(), witness.Get(v))
		}
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("list", false, "List the available demo problems")
	checkCmd.Flags().Float64("precision", 1e-3, "Delta precision for accepting an ambiguous constraint")
	checkCmd.Flags().Int("jobs", 1, "Number of parallel search workers (1 runs the sequential engine; must be at least 1)")
	checkCmd.Flags().Bool("no-polytope", false, "Disable the linear-system polytope contractor")
	checkCmd.Flags().String("strategy", "maxdiam", "Branching strategy: maxdiam or gradient")
}
