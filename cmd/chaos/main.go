// chaos prints Gaussian quadrature rules and random samples for
// simple product distributions given on the command line.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/quad"
)

func main() {
	root := &cobra.Command{
		Use:           "chaos",
		Short:         "quadrature rules and samples for product distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(quadCmd(), sampleCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chaos:", err)
		os.Exit(1)
	}
}

func quadCmd() *cobra.Command {
	var (
		order     int
		algorithm string
		accuracy  int
		dists     []string
	)
	cmd := &cobra.Command{
		Use:   "quad",
		Short: "print a Gaussian quadrature rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseJoint(dists)
			if err != nil {
				return err
			}
			rule, err := quad.Gaussian{
				Order:     order,
				Algorithm: quad.Algorithm(algorithm),
				Accuracy:  accuracy,
			}.Rule(d)
			if err != nil {
				return err
			}
			for _, w := range rule.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			for j := 0; j < rule.Len(); j++ {
				for i := 0; i < rule.Dim(); i++ {
					fmt.Printf("%.12g ", rule.Abscissas[i][j])
				}
				fmt.Printf("%.12g\n", rule.Weights[j])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&order, "order", 5, "rule order (order+1 nodes per dimension)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "recurrence algorithm (analytical, stieltjes, chebyshev, lanczos)")
	cmd.Flags().IntVar(&accuracy, "accuracy", 0, "proxy quadrature size for discretized algorithms")
	cmd.Flags().StringArrayVar(&dists, "dist", nil, "marginal, e.g. normal(0,1); repeat per dimension")
	return cmd
}

func sampleCmd() *cobra.Command {
	var (
		n     int
		seed  uint64
		dists []string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "draw random samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseJoint(dists)
			if err != nil {
				return err
			}
			var src rand.Source
			if seed != 0 {
				src = rand.NewSource(seed)
			}
			samples, err := d.Sample(n, src)
			if err != nil {
				return err
			}
			for j := 0; j < n; j++ {
				for i := range samples {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Printf("%.12g", samples[i][j])
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 100, "number of samples")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().StringArrayVar(&dists, "dist", nil, "marginal, e.g. normal(0,1); repeat per dimension")
	return cmd
}

func parseJoint(specs []string) (*dist.Dist, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --dist is required")
	}
	marginals := make([]*dist.Dist, len(specs))
	for i, s := range specs {
		d, err := parseDist(s)
		if err != nil {
			return nil, err
		}
		marginals[i] = d
	}
	return dist.J(marginals...)
}

func parseDist(s string) (*dist.Dist, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("malformed distribution %q", s)
	}
	name := strings.ToLower(s[:open])
	var args []float64
	for _, f := range strings.Split(s[open+1:len(s)-1], ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed distribution %q: %v", s, err)
		}
		args = append(args, v)
	}
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d parameters, got %d", name, n, len(args))
		}
		return nil
	}
	switch name {
	case "normal":
		if err := want(2); err != nil {
			return nil, err
		}
		return dist.Normal(args[0], args[1])
	case "uniform":
		if err := want(2); err != nil {
			return nil, err
		}
		return dist.Uniform(args[0], args[1])
	case "gamma":
		if err := want(2); err != nil {
			return nil, err
		}
		return dist.Gamma(args[0], args[1])
	case "exponential":
		if err := want(1); err != nil {
			return nil, err
		}
		return dist.Exponential(args[0])
	case "beta":
		if err := want(4); err != nil {
			return nil, err
		}
		return dist.Beta(args[0], args[1], args[2], args[3])
	case "binomial":
		if err := want(2); err != nil {
			return nil, err
		}
		return dist.Binomial(int(args[0]), args[1])
	case "loguniform":
		if err := want(4); err != nil {
			return nil, err
		}
		return dist.LogUniform(args[0], args[1], args[2], args[3])
	case "wald":
		if err := want(3); err != nil {
			return nil, err
		}
		return dist.Wald(args[0], args[1], args[2])
	default:
		return nil, fmt.Errorf("unknown distribution %q", name)
	}
}
