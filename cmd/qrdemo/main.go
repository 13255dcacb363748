// Command qrdemo runs the Householder QR stability experiment: factor an
// ill-conditioned Hilbert system with a known solution, solve it, and
// report how much accuracy the condition number cost.
//
// In double precision a condition number κ₂ costs roughly log10(κ₂) of
// the ~16 available digits. The Hilbert matrix makes that vivid: at
// n = 10 it carries κ₂ ≈ 10¹³, so only about three digits survive — and
// the point of the demonstration is that the solver loses exactly those
// digits and nothing more: no blow-up, no NaN.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
)

var (
	// Flags
	size    int
	condTol float64
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "qrdemo",
	Short: "Householder QR backward-stability demonstration",
	Long: `qrdemo factors the n×n Hilbert matrix — the classic severely
ill-conditioned benchmark — and solves H·x = b for a right-hand side
built from the known solution x = (1, …, 1).

It reports log10 of the condition number and the Euclidean norm of the
error between the computed and the exact solution. Backward stability
predicts roughly 16 − log10(κ₂) accurate digits; the run shows the
solver delivering exactly that, with no divergence and no NaN, however
hostile the conditioning.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runExperiment,
}

// runExperiment executes the Hilbert solve and reports the diagnostics.
func runExperiment(cmd *cobra.Command, args []string) error {
	if size < 1 {
		return fmt.Errorf("size must be >= 1, got %d", size)
	}

	// Build the experiment: A = Hilbert(n), x = ones, b = A·x.
	a, err := matrix.Hilbert(size)
	if err != nil {
		return fmt.Errorf("building Hilbert matrix: %w", err)
	}
	want := matrix.Ones(size)
	b, err := matrix.MatVec(a, want)
	if err != nil {
		return fmt.Errorf("building right-hand side: %w", err)
	}

	// Measure the conditioning first, so the accuracy prediction is on
	// the table before the solve runs.
	kappa, err := matrix.Cond2(a, condTol, matrix.DefaultCondSweeps)
	if err != nil {
		return fmt.Errorf("estimating condition number: %w", err)
	}
	logKappa := math.Log10(kappa)
	logger.Debug("conditioning measured",
		zap.Int("n", size),
		zap.Float64("cond2", kappa))

	// Factor and solve.
	v, r, err := qr.Factor(a)
	if err != nil {
		return fmt.Errorf("factorization: %w", err)
	}
	y, err := qr.ApplyQT(v, b)
	if err != nil {
		return fmt.Errorf("applying Qᵀ: %w", err)
	}
	got, err := qr.BackSubstitute(r, y)
	if err != nil {
		return fmt.Errorf("back-substitution: %w", err)
	}

	// Error against the known exact solution.
	diff := make([]float64, size)
	for i := range diff {
		diff[i] = got[i] - want[i]
	}
	errNorm := matrix.VecNorm2(diff)

	logger.Info("experiment complete",
		zap.Int("n", size),
		zap.Float64("log10_cond", logKappa),
		zap.Float64("error_norm", errNorm),
		zap.Float64("digits_predicted", math.Max(0, 16-logKappa)))

	fmt.Printf("n = %d\n", size)
	fmt.Printf("log10(cond(A))   = %.2f\n", logKappa)
	fmt.Printf("‖x̃ − x‖₂        = %.3e\n", errNorm)
	fmt.Printf("digits predicted = ~%.0f of 16\n", math.Max(0, 16-logKappa))

	return nil
}

func main() {
	rootCmd.Flags().IntVarP(&size, "size", "n", 10, "Hilbert matrix dimension")
	rootCmd.Flags().Float64Var(&condTol, "tol", matrix.DefaultCondTol, "condition estimator tolerance")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
