package worksheet

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/gauss/gaussian"
)

// Named is a distribution together with the name it was given.
type Named struct {
	Name     string  `json:"name" yaml:"name"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
}

// Point is one function evaluation.
type Point struct {
	At    float64 `json:"at" yaml:"at"`
	Value float64 `json:"value" yaml:"value"`
}

// QueryResult holds the evaluations requested by one Query.
type QueryResult struct {
	Of  string  `json:"of" yaml:"of"`
	PDF []Point `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	CDF []Point `json:"cdf,omitempty" yaml:"cdf,omitempty"`
	PPF []Point `json:"ppf,omitempty" yaml:"ppf,omitempty"`
}

// Result is the outcome of evaluating a worksheet. Base distributions come
// first in name order, followed by steps in declaration order.
type Result struct {
	Distributions []Named       `json:"distributions" yaml:"distributions"`
	Queries       []QueryResult `json:"queries,omitempty" yaml:"queries,omitempty"`
}

// binaryParams are the params of mul, div, add and sub. Right is a
// distribution name, or a number for mul and div.
type binaryParams struct {
	Left  string `mapstructure:"left"`
	Right any    `mapstructure:"right"`
}

type scaleParams struct {
	Of     string  `mapstructure:"of"`
	Factor float64 `mapstructure:"factor"`
}

// Evaluate builds every distribution and runs every query. Errors from the
// gaussian package are wrapped with the step name and keep their identity
// for errors.Is.
func (w *Worksheet) Evaluate() (*Result, error) {
	env := make(map[string]gaussian.Gaussian, len(w.Distributions)+len(w.Steps))
	res := &Result{}

	for _, name := range slices.Sorted(maps.Keys(w.Distributions)) {
		d := w.Distributions[name]
		g, err := gaussian.New(d.Mean, d.Variance)
		if err != nil {
			return nil, fmt.Errorf("distribution %q: %w", name, err)
		}
		env[name] = g
		res.Distributions = append(res.Distributions, named(name, g))
	}

	for _, step := range w.Steps {
		if _, exists := env[step.Name]; exists {
			return nil, fmt.Errorf("step %q: name already defined", step.Name)
		}
		g, err := evalStep(env, step)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		if !g.IsFinite() {
			return nil, fmt.Errorf("step %q: %s overflows: result %s is not finite", step.Name, step.Op, g)
		}
		slog.Debug("worksheet step", "name", step.Name, "op", step.Op, "result", g.String())
		env[step.Name] = g
		res.Distributions = append(res.Distributions, named(step.Name, g))
	}

	for _, q := range w.Queries {
		g, ok := env[q.Of]
		if !ok {
			return nil, fmt.Errorf("query: unknown distribution %q", q.Of)
		}
		res.Queries = append(res.Queries, QueryResult{
			Of:  q.Of,
			PDF: evalPoints(q.PDF, g.PDF),
			CDF: evalPoints(q.CDF, g.CDF),
			PPF: evalPoints(q.PPF, g.PPF),
		})
	}
	return res, nil
}

func evalStep(env map[string]gaussian.Gaussian, step Step) (gaussian.Gaussian, error) {
	switch step.Op {
	case "mul", "div":
		var p binaryParams
		if err := decodeParams(step.Params, &p); err != nil {
			return gaussian.Gaussian{}, err
		}
		left, err := lookup(env, p.Left)
		if err != nil {
			return gaussian.Gaussian{}, err
		}
		right, err := operand(env, p.Right)
		if err != nil {
			return gaussian.Gaussian{}, err
		}
		if step.Op == "mul" {
			return left.Mul(right)
		}
		return left.Div(right)

	case "add", "sub":
		var p binaryParams
		if err := decodeParams(step.Params, &p); err != nil {
			return gaussian.Gaussian{}, err
		}
		left, err := lookup(env, p.Left)
		if err != nil {
			return gaussian.Gaussian{}, err
		}
		name, ok := p.Right.(string)
		if !ok {
			return gaussian.Gaussian{}, fmt.Errorf("%s: right must name a distribution, got %v", step.Op, p.Right)
		}
		right, err := lookup(env, name)
		if err != nil {
			return gaussian.Gaussian{}, err
		}
		if step.Op == "add" {
			return left.Add(right)
		}
		return left.Sub(right)

	case "scale":
		var p scaleParams
		if err := decodeParams(step.Params, &p); err != nil {
			return gaussian.Gaussian{}, err
		}
		of, err := lookup(env, p.Of)
		if err != nil {
			return gaussian.Gaussian{}, err
		}
		return of.Scale(p.Factor)

	default:
		return gaussian.Gaussian{}, fmt.Errorf("unknown op %q", step.Op)
	}
}

func decodeParams(params map[string]any, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      v,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("decoding params: %w", err)
	}
	return nil
}

func lookup(env map[string]gaussian.Gaussian, name string) (gaussian.Gaussian, error) {
	g, ok := env[name]
	if !ok {
		return gaussian.Gaussian{}, fmt.Errorf("unknown distribution %q", name)
	}
	return g, nil
}

func operand(env map[string]gaussian.Gaussian, v any) (gaussian.Operand, error) {
	switch v := v.(type) {
	case string:
		return lookup(env, v)
	case int:
		return gaussian.Scalar(v), nil
	case int64:
		return gaussian.Scalar(v), nil
	case uint64:
		return gaussian.Scalar(v), nil
	case float64:
		return gaussian.Scalar(v), nil
	default:
		return nil, fmt.Errorf("right must be a distribution name or a number, got %v", v)
	}
}

func evalPoints(at []float64, f func(float64) float64) []Point {
	if len(at) == 0 {
		return nil
	}
	out := make([]Point, len(at))
	for i, x := range at {
		out[i] = Point{At: x, Value: f(x)}
	}
	return out
}

func named(name string, g gaussian.Gaussian) Named {
	return Named{Name: name, Mean: g.Mean(), Variance: g.Variance(), StdDev: g.StdDev()}
}
