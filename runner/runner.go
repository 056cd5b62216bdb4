package runner

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/solver"
)

// ErrUnknownAlgorithm is returned for an algorithm name outside Algorithms.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

// Algorithm names one of the wired solvers.
type Algorithm string

// The supported solver names, as they appear in logs and on the CLI.
const (
	BFS            Algorithm = "bfs"
	DFS            Algorithm = "dfs"
	AStarManhattan Algorithm = "astar_manhattan"
	AStarEuclidean Algorithm = "astar_euclidean"
	Value          Algorithm = "value"
	Policy         Algorithm = "policy"
)

// Algorithms returns every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, AStarManhattan, AStarEuclidean, Value, Policy}
}

// ParseAlgorithm maps a CLI name to its Algorithm, or ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Spec fully describes one run: the maze to carve, the environment
// parameters, and the solver to apply. Every field is explicit so a Spec is
// reproducible on its own.
type Spec struct {
	Rows, Cols int
	Seed       int64
	Algorithm  Algorithm

	Discount   float64
	Theta      float64
	SlipProb   float64
	StepReward float64
	GoalReward float64
	WallReward float64
}

// Run carves the maze, builds the environment, executes the solver, and
// returns the result with its finalized metrics record.
func Run(spec Spec) (*solver.Result, *metrics.Run, error) {
	m, err := maze.Generate(spec.Rows, spec.Cols, spec.Seed)
	if err != nil {
		return nil, nil, err
	}
	env, err := mazenv.New(m,
		mazenv.WithDiscount(spec.Discount),
		mazenv.WithSlip(spec.SlipProb),
		mazenv.WithStepReward(spec.StepReward),
		mazenv.WithGoalReward(spec.GoalReward),
		mazenv.WithWallReward(spec.WallReward),
	)
	if err != nil {
		return nil, nil, err
	}

	rec := metrics.NewRun(string(spec.Algorithm), spec.Rows, spec.Cols, spec.Seed)

	start := time.Now()
	var res *solver.Result
	switch spec.Algorithm {
	case BFS:
		res, err = solver.BFS(env, rec)
	case DFS:
		res, err = solver.DFS(env, rec)
	case AStarManhattan:
		res, err = solver.AStar(env, rec, solver.Manhattan)
	case AStarEuclidean:
		res, err = solver.AStar(env, rec, solver.Euclidean)
	case Value:
		res, err = solver.ValueIteration(env, rec, solver.WithTheta(spec.Theta))
	case Policy:
		res, err = solver.PolicyIteration(env, rec, solver.WithTheta(spec.Theta))
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, spec.Algorithm)
	}
	if err != nil {
		return nil, nil, err
	}
	rec.ExecutionTimeMS = float64(time.Since(start).Microseconds()) / 1000.0

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	rec.PeakMemoryKB = ms.HeapAlloc / 1024

	rec.Finalize()

	return res, rec, nil
}

// SweepPlan enumerates a batch of runs as the cross product of sizes, seeds,
// and algorithms. Parallel bounds concurrent runs; values below 1 mean
// sequential.
type SweepPlan struct {
	Sizes      []int
	Seeds      []int64
	Algorithms []Algorithm
	Parallel   int
}

// Specs expands the plan against base, which supplies the environment
// parameters. Order is sizes-major, then seeds, then algorithms.
func (p SweepPlan) Specs(base Spec) []Spec {
	specs := make([]Spec, 0, len(p.Sizes)*len(p.Seeds)*len(p.Algorithms))
	for _, size := range p.Sizes {
		for _, seed := range p.Seeds {
			for _, algo := range p.Algorithms {
				s := base
				s.Rows, s.Cols = size, size
				s.Seed = seed
				s.Algorithm = algo
				specs = append(specs, s)
			}
		}
	}

	return specs
}

// RunSweep executes every spec of the plan, at most Parallel at a time, and
// returns the metrics records in plan order. Runs are independent: each
// carves its own maze and owns its own record. The first error aborts no
// other run but is reported after all complete.
func RunSweep(plan SweepPlan, base Spec) ([]*metrics.Run, error) {
	specs := plan.Specs(base)
	recs := make([]*metrics.Run, len(specs))
	errs := make([]error, len(specs))

	workers := plan.Parallel
	if workers < 1 {
		workers = 1
	}
	if workers > len(specs) {
		workers = len(specs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				_, recs[i], errs[i] = Run(specs[i])
			}
		}()
	}
	for i := range specs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := recs[:0:0]
	for i, rec := range recs {
		if errs[i] != nil {
			return nil, fmt.Errorf("runner: spec %d (%s %dx%d seed %d): %w",
				i, specs[i].Algorithm, specs[i].Rows, specs[i].Cols, specs[i].Seed, errs[i])
		}
		out = append(out, rec)
	}

	return out, nil
}
