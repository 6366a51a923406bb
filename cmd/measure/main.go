// Command measure benchmarks Ordered.Bag at growing sizes and reports how the cost of each
// operation and the height of the tree evolve.
package main

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-collections/Ordered"
	"github.com/g-m-twostay/go-collections/Trees"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type measure struct {
	size     int
	steps    int
	seed     int64
	logLevel string
}

// result of one step.
type result struct {
	n     int
	depth uint
	ops   map[string]time.Duration
}

var opNames = []string{"add", "at", "range", "remove"}

func main() {
	m := &measure{}
	cmd := &cobra.Command{
		Use:           "measure",
		Short:         "Measure the cost of bag operations at growing sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return m.run()
		},
	}
	cmd.Flags().IntVar(&m.size, "size", 1000000, "number of elements at the last step")
	cmd.Flags().IntVar(&m.steps, "steps", 10, "number of steps to reach size")
	cmd.Flags().Int64Var(&m.seed, "seed", 0, "seed of the random elements")
	cmd.Flags().StringVar(&m.logLevel, "log-level", "info", "logrus level")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (m *measure) run() error {
	level, err := logrus.ParseLevel(m.logLevel)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if m.size <= 0 || m.steps <= 0 {
		return errors.Errorf("size and steps must be positive, got %d and %d", m.size, m.steps)
	}
	testing.Init()

	rg := rand.New(rand.NewSource(m.seed))
	var results []result
	for i := 1; i <= m.steps; i++ {
		n := max(m.size/m.steps*i, 1)
		all := make([]int, n)
		for j := range all {
			all[j] = rg.Int()
		}
		r := m.step(all)
		results = append(results, r)
		fields := logrus.Fields{
			"step":  i,
			"n":     humanize.Comma(int64(n)),
			"depth": r.depth,
		}
		for _, op := range opNames {
			fields[op] = r.ops[op]
		}
		logrus.WithFields(fields).Info("step done")
	}
	for _, op := range opNames {
		avg, dev := stats(results, op)
		logrus.WithFields(logrus.Fields{
			"op":      op,
			"average": time.Duration(avg),
			"stddev":  time.Duration(dev),
		}).Info("per operation")
	}
	return nil
}

// step benchmarks every operation on a bag of the elements of all, and the height of the
// tree holding them.
func (m *measure) step(all []int) result {
	r := result{n: len(all), ops: make(map[string]time.Duration, len(opNames))}
	tree := Trees.New[int, uint](cmp.Compare[int])
	for _, v := range all {
		tree.Insert(v, Trees.Duplicate)
	}
	r.depth = tree.MaxDepth()
	logrus.WithFields(logrus.Fields{
		"n":        humanize.Comma(int64(len(all))),
		"minDepth": tree.MinDepth(),
		"maxDepth": r.depth,
		"bound":    fmt.Sprintf("%.1f", 2*math.Log2(float64(len(all))+1)),
	}).Debug("tree height")

	fill := func() *Ordered.Bag[int] {
		b := Ordered.NewBag[int]()
		for _, v := range all {
			b.Add(v)
		}
		return b
	}
	perOp := func(f func(b *testing.B)) time.Duration {
		br := testing.Benchmark(f)
		if br.N == 0 {
			return 0
		}
		return time.Duration(br.T.Nanoseconds() / int64(br.N) / int64(len(all)))
	}

	r.ops["add"] = perOp(func(b *testing.B) {
		for range b.N {
			fill()
		}
	})
	bag := fill()
	r.ops["at"] = perOp(func(b *testing.B) {
		for range b.N {
			for i := range all {
				bag.At(i)
			}
		}
	})
	r.ops["range"] = perOp(func(b *testing.B) {
		for range b.N {
			for i := 1; i < len(all); i++ {
				bag.Range(all[i-1], true, all[i], false).Len()
			}
		}
	})
	r.ops["remove"] = perOp(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			bb := bag.Clone()
			b.StartTimer()
			for _, v := range all {
				bb.Remove(v)
			}
		}
	})
	logrus.WithField("bag", humanize.Comma(int64(bag.Len()))).Debug("bag filled")
	return r
}

// stats are the average and the standard deviation of op across the steps.
func stats(results []result, op string) (avg, dev float64) {
	for _, r := range results {
		avg += float64(r.ops[op])
	}
	avg /= float64(len(results))
	for _, r := range results {
		d := float64(r.ops[op]) - avg
		dev += d * d
	}
	return avg, math.Sqrt(dev / float64(len(results)))
}
