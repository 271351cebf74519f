package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/born-ml/graphgrad/autodiff"
	"github.com/born-ml/graphgrad/backend/cpu"
	"github.com/born-ml/graphgrad/internal/serialization"
	"github.com/born-ml/graphgrad/optim"
	"github.com/born-ml/graphgrad/tensor"
)

// runMatMul computes A·(A·B·C) and prints the gradients of A and B.
func runMatMul(w io.Writer, dtype tensor.DataType, cfg autodiff.Config) error {
	ctx := autodiff.NewContext()
	backend := cpu.New()
	shape := tensor.Shape{2, 2}

	leaves := map[string][]float64{
		"A": {1, 7, 13, -3},
		"B": {4, 7, 2, 3},
		"C": {2, 2, 2, 2},
	}
	t := make(map[string]*autodiff.Tensor, len(leaves))
	for _, name := range []string{"A", "B", "C"} {
		leaf, err := autodiff.FromFloat64(ctx, leaves[name], shape, dtype, backend)
		if err != nil {
			return errors.Wrapf(err, "creating %s", name)
		}
		t[name] = leaf
	}

	out := t["A"].MatMul(t["A"].MatMul(t["B"]).MatMul(t["C"]))
	grads := out.BackwardWithConfig(cfg)

	fmt.Fprintf(w, "out    = %s\n", out)
	for _, name := range []string{"A", "B", "C"} {
		grad, ok := t[name].Grad(grads)
		if !ok {
			return errors.Errorf("no gradient for %s", name)
		}
		fmt.Fprintf(w, "grad %s = %s\n", name, grad)
	}
	printStore(w, grads)
	return nil
}

type trainConfig struct {
	DType     tensor.DataType
	Backward  autodiff.Config
	Optimizer string
	LR        float64
	Momentum  float64
	Steps     int
	Size      int
	Seed      uint64
	SavePath  string // SafeTensors checkpoint written after training, if set.
}

// runTrain minimizes mean((x - target)²) from a zero start and reports the
// loss along the way.
func runTrain(w io.Writer, cfg trainConfig) error {
	if cfg.Size <= 0 || cfg.Steps <= 0 {
		return errors.Errorf("size and steps must be positive, got %d and %d", cfg.Size, cfg.Steps)
	}
	ctx := autodiff.NewContext()
	backend := cpu.New()
	shape := tensor.Shape{cfg.Size}

	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	target := autodiff.NewTensor(ctx, tensor.Random(shape, cfg.DType, tensor.NormalDistribution(0, 1), src, backend))
	x := optim.NewParam("x", autodiff.NewTensor(ctx, tensor.Zeros(shape, cfg.DType, backend)))

	var optimizer optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		optimizer = optim.NewSGD([]*optim.Param{x}, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
	case "adam":
		optimizer = optim.NewAdam([]*optim.Param{x}, optim.AdamConfig{LR: cfg.LR})
	default:
		return errors.Errorf("unknown optimizer %q, want sgd or adam", cfg.Optimizer)
	}

	every := max(cfg.Steps/10, 1)
	var lastGrad *tensor.Tensor
	for step := range cfg.Steps {
		loss := x.Tensor().Sub(target).Powf(2).Mean()
		grads := loss.BackwardWithConfig(cfg.Backward)
		if step%every == 0 {
			fmt.Fprintf(w, "step %s: loss %.6f, ", humanize.Comma(int64(step)), loss.Item())
			printStore(w, grads)
		}
		lastGrad, _ = x.Tensor().Grad(grads)
		optimizer.Step(grads)
	}
	final := x.Tensor().Sub(target).Powf(2).Mean()
	fmt.Fprintf(w, "final loss after %s steps: %.6f\n", humanize.Comma(int64(cfg.Steps)), final.Item())
	fmt.Fprintf(w, "nodes recorded: %s\n", humanize.Comma(int64(ctx.NumNodes())))

	if cfg.SavePath == "" {
		return nil
	}
	tensors := map[string]*tensor.RawTensor{
		"param." + x.Name(): x.Tensor().Value().Raw(),
		"target":            target.Value().Raw(),
	}
	if lastGrad != nil {
		tensors["grad."+x.Name()] = lastGrad.Raw()
	}
	if sgd, ok := optimizer.(*optim.SGD); ok {
		for name, state := range sgd.StateDict() {
			tensors["optim."+name] = state.Raw()
		}
	}
	metadata := map[string]string{
		"optimizer":  cfg.Optimizer,
		"steps":      strconv.Itoa(cfg.Steps),
		"final_loss": strconv.FormatFloat(final.Item(), 'g', -1, 64),
	}
	if err := serialization.WriteSafeTensors(cfg.SavePath, tensors, metadata); err != nil {
		return errors.WithMessagef(err, "saving checkpoint to %s", cfg.SavePath)
	}
	fmt.Fprintf(w, "saved %d tensors to %s\n", len(tensors), cfg.SavePath)
	return nil
}

// printStore reports how many gradients grads holds and their total size.
func printStore(w io.Writer, grads *autodiff.Gradients) {
	var bytes uint64
	for _, id := range grads.IDs() {
		if grad, ok := autodiff.Grad(grads, id); ok {
			bytes += uint64(grad.Raw().ByteSize())
		}
	}
	fmt.Fprintf(w, "gradient store: %d tensors, %s\n", grads.Len(), humanize.Bytes(bytes))
}
