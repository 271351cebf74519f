package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/graphgrad/internal/autodiff"
	"github.com/born-ml/graphgrad/internal/backend/cpu"
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/optim"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newParam(t *testing.T, ctx *graph.Context, name string, data ...float32) *optim.Param {
	t.Helper()
	x, err := autodiff.FromSlice(ctx, data, tensor.Shape{len(data)}, cpu.New())
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	return optim.NewParam(name, x)
}

// gradsFor registers grad for param, the way a backward pass would.
func gradsFor(t *testing.T, grads *graph.Gradients, param *optim.Param, grad ...float32) *graph.Gradients {
	t.Helper()
	if grads == nil {
		grads = graph.NewGradients()
	}
	g, err := tensor.FromSlice(grad, tensor.Shape{len(grad)}, cpu.New())
	if err != nil {
		t.Fatalf("creating gradient: %v", err)
	}
	grads.Register(param.Tensor().ID(), g)
	return grads
}

func value(param *optim.Param) []float64 {
	return param.Tensor().ToFloat64()
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	param := newParam(t, graph.NewContext(), "x", 2.0)
	optimizer := optim.NewSGD([]*optim.Param{param}, optim.SGDConfig{LR: 0.1})

	before := param.Tensor()
	grads := gradsFor(t, nil, param, 1.0)
	optimizer.Step(grads)

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if actual := value(param)[0]; !floatEqual(actual, 1.9, 1e-6) {
		t.Errorf("SGD update: got %f, want 1.9", actual)
	}
	if param.Tensor() == before || !param.Tensor().IsLeaf() {
		t.Error("SGD step should replace the parameter with a fresh leaf")
	}
	if grads.Has(before.ID()) {
		t.Error("SGD step should consume the parameter gradient")
	}
	if before.ToFloat64()[0] != 2.0 {
		t.Errorf("previous leaf was modified: %v", before.ToFloat64())
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	param := newParam(t, graph.NewContext(), "x", 1.0)
	optimizer := optim.NewSGD([]*optim.Param{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// v_1 = 0.9 * 0 + 1.0 = 1.0
	// x_1 = 1.0 - 0.1 * 1.0 = 0.9
	optimizer.Step(gradsFor(t, nil, param, 1.0))
	if actual := value(param)[0]; !floatEqual(actual, 0.9, 1e-6) {
		t.Errorf("SGD momentum step 1: got %f, want 0.9", actual)
	}

	// v_2 = 0.9 * 1.0 + 1.0 = 1.9
	// x_2 = 0.9 - 0.1 * 1.9 = 0.71
	optimizer.Step(gradsFor(t, nil, param, 1.0))
	if actual := value(param)[0]; !floatEqual(actual, 0.71, 1e-5) {
		t.Errorf("SGD momentum step 2: got %f, want 0.71", actual)
	}
}

// TestSGD_SkipsMissingGradient tests that parameters outside the pass are untouched.
func TestSGD_SkipsMissingGradient(t *testing.T) {
	ctx := graph.NewContext()
	used := newParam(t, ctx, "used", 1.0)
	unused := newParam(t, ctx, "unused", 5.0)
	optimizer := optim.NewSGD([]*optim.Param{used, unused}, optim.SGDConfig{LR: 0.5})

	before := unused.Tensor()
	optimizer.Step(gradsFor(t, nil, used, 1.0))

	if unused.Tensor() != before {
		t.Error("parameter without gradient should keep its leaf")
	}
	if actual := value(used)[0]; !floatEqual(actual, 0.5, 1e-6) {
		t.Errorf("used parameter: got %f, want 0.5", actual)
	}
}

// TestSGD_GetSetLR tests learning rate accessors.
func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	if optimizer.GetLR() != 0.01 {
		t.Errorf("default LR: got %f, want 0.01", optimizer.GetLR())
	}

	optimizer.SetLR(0.001)
	if optimizer.GetLR() != 0.001 {
		t.Errorf("GetLR after SetLR: got %f, want 0.001", optimizer.GetLR())
	}
}

// TestSGD_StateDict tests saving and restoring velocity buffers.
func TestSGD_StateDict(t *testing.T) {
	param := newParam(t, graph.NewContext(), "w", 1.0, 2.0)
	optimizer := optim.NewSGD([]*optim.Param{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	optimizer.Step(gradsFor(t, nil, param, 1.0, 1.0))

	state := optimizer.StateDict()
	velocity, ok := state["velocity.w"]
	if !ok {
		t.Fatalf("missing velocity.w in %v", state)
	}

	restored := optim.NewSGD([]*optim.Param{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	if err := restored.LoadStateDict(state); err != nil {
		t.Fatalf("LoadStateDict: %v", err)
	}
	if got := restored.StateDict()["velocity.w"]; got != velocity {
		t.Errorf("restored velocity: got %v, want %v", got, velocity)
	}

	bad := map[string]*tensor.Tensor{"velocity.w": tensor.Zeros(tensor.Shape{3}, tensor.Float32, cpu.New())}
	if err := restored.LoadStateDict(bad); err == nil {
		t.Error("LoadStateDict should reject a velocity of the wrong shape")
	}
}

// TestAdam_SimpleUpdate tests Adam optimizer update.
func TestAdam_SimpleUpdate(t *testing.T) {
	param := newParam(t, graph.NewContext(), "x", 1.0)
	optimizer := optim.NewAdam([]*optim.Param{param}, optim.AdamConfig{
		LR:    0.001,
		Beta1: 0.9,
		Beta2: 0.999,
		Eps:   1e-8,
	})

	optimizer.Step(gradsFor(t, nil, param, 1.0))

	// After first step (with bias correction):
	// m_hat = 0.1 / (1 - 0.9^1) = 1.0
	// v_hat = 0.001 / (1 - 0.999^1) = 1.0
	// x_new = 1.0 - 0.001 * 1.0 / (sqrt(1.0) + 1e-8) ≈ 0.999
	if actual := value(param)[0]; !floatEqual(actual, 0.999, 1e-5) {
		t.Errorf("Adam first step: got %f, want 0.999", actual)
	}
}

// TestAdam_BiasCorrection tests that Adam applies bias correction correctly.
func TestAdam_BiasCorrection(t *testing.T) {
	param := newParam(t, graph.NewContext(), "x", 1.0)
	optimizer := optim.NewAdam([]*optim.Param{param}, optim.AdamConfig{LR: 0.01})

	if optimizer.GetTimestep() != 0 {
		t.Errorf("Initial timestep: got %d, want 0", optimizer.GetTimestep())
	}

	for i := 1; i <= 3; i++ {
		optimizer.Step(gradsFor(t, nil, param, 1.0))
		if optimizer.GetTimestep() != i {
			t.Errorf("After step %d, timestep: got %d, want %d", i, optimizer.GetTimestep(), i)
		}
	}

	// With a constant gradient the corrected step stays lr: 1 - 3 * 0.01.
	if final := value(param)[0]; !floatEqual(final, 0.97, 1e-4) {
		t.Errorf("After 3 Adam steps: got %f, want 0.97", final)
	}
}

// TestConvergence_SimpleQuadratic tests optimizer convergence on f(x) = x².
//
// Gradients come from real backward passes. The minimum is at x = 0.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	optimizers := map[string]func(params []*optim.Param) optim.Optimizer{
		"SGD": func(params []*optim.Param) optim.Optimizer {
			return optim.NewSGD(params, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
		},
		"Adam": func(params []*optim.Param) optim.Optimizer {
			return optim.NewAdam(params, optim.AdamConfig{LR: 0.1})
		},
	}

	for name, newOptimizer := range optimizers {
		t.Run(name, func(t *testing.T) {
			param := newParam(t, graph.NewContext(), "x", 3.0)
			optimizer := newOptimizer([]*optim.Param{param})

			for i := 0; i < 100; i++ {
				x := param.Tensor()
				optimizer.Step(x.Mul(x).Sum().Backward())
			}

			if final := value(param)[0]; math.Abs(final) > 0.1 {
				t.Errorf("%s convergence: x = %f, expected close to 0", name, final)
			}
		})
	}
}

// TestMultipleParameters tests optimizers with multiple parameters.
func TestMultipleParameters(t *testing.T) {
	ctx := graph.NewContext()
	param1 := newParam(t, ctx, "x1", 1.0, 2.0)
	param2 := newParam(t, ctx, "x2", 3.0)
	optimizer := optim.NewSGD([]*optim.Param{param1, param2}, optim.SGDConfig{LR: 0.1})

	grads := gradsFor(t, nil, param1, 1.0, 2.0)
	gradsFor(t, grads, param2, 0.5)
	optimizer.Step(grads)

	// param1: [1.0, 2.0] - 0.1 * [1.0, 2.0] = [0.9, 1.8]
	p1 := value(param1)
	if !floatEqual(p1[0], 0.9, 1e-6) || !floatEqual(p1[1], 1.8, 1e-6) {
		t.Errorf("param1: got %v, want [0.9, 1.8]", p1)
	}

	// param2: 3.0 - 0.1 * 0.5 = 2.95
	if p2 := value(param2)[0]; !floatEqual(p2, 2.95, 1e-6) {
		t.Errorf("param2: got %f, want 2.95", p2)
	}
	if grads.Len() != 0 {
		t.Errorf("gradients left after step: %d", grads.Len())
	}
}
