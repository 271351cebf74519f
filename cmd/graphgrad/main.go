// Package main provides the graphgrad CLI: small demos of the autodiff engine.
//
// Usage:
//
//	graphgrad [flags] matmul   gradients of a matrix product chain
//	graphgrad [flags] train    fit a parameter to a random target
//	graphgrad version
//
// Engine logging is controlled by the klog flags, e.g. -v=2.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/graphgrad/autodiff"
	"github.com/born-ml/graphgrad/tensor"
)

const version = "v0.1.0-dev"

var (
	flagDType     = flag.String("dtype", "float32", "Element type: float32, float64 or float16")
	flagParallel  = flag.Bool("parallel", false, "Step independent nodes of each backward level concurrently")
	flagOptimizer = flag.String("optimizer", "adam", "Optimizer for train: sgd or adam")
	flagLR        = flag.Float64("lr", 0.1, "Learning rate for train")
	flagMomentum  = flag.Float64("momentum", 0.9, "SGD momentum for train")
	flagSteps     = flag.Int("steps", 100, "Number of optimizer steps for train")
	flagSize      = flag.Int("size", 8, "Number of elements of the trained parameter")
	flagSeed      = flag.Uint64("seed", 42, "Random seed for train")
	flagSave      = flag.String("save", "", "SafeTensors file receiving the trained parameter, its last gradient and optimizer state")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] matmul|train|version\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	command := "matmul"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if command == "version" {
		fmt.Printf("graphgrad %s\n", version)
		return
	}

	dtype, err := parseDType(*flagDType)
	if err != nil {
		klog.Fatalf("%+v", err)
	}
	cfg := autodiff.DefaultConfig()
	if *flagParallel {
		cfg = autodiff.ParallelConfig()
	}

	switch command {
	case "matmul":
		err = runMatMul(os.Stdout, dtype, cfg)
	case "train":
		err = runTrain(os.Stdout, trainConfig{
			DType:     dtype,
			Backward:  cfg,
			Optimizer: *flagOptimizer,
			LR:        *flagLR,
			Momentum:  *flagMomentum,
			Steps:     *flagSteps,
			Size:      *flagSize,
			Seed:      *flagSeed,
			SavePath:  *flagSave,
		})
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		klog.Errorf("%s failed: %+v", command, err)
		klog.Flush()
		os.Exit(1)
	}
}

func parseDType(name string) (tensor.DataType, error) {
	switch name {
	case "float32":
		return tensor.Float32, nil
	case "float64":
		return tensor.Float64, nil
	case "float16":
		return tensor.Float16, nil
	}
	return 0, errors.Errorf("unknown dtype %q, want float32, float64 or float16", name)
}
