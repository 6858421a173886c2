package input

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/nwcorner/transport"
)

// Spec is the raw, untrusted description of a problem (typed in, decoded
// from YAML or generated). Struct tags hold the per-field rules; shape
// agreement between fields is checked by transport.NewProblem.
type Spec struct {
	Supply       []float64   `yaml:"supply" validate:"min=1,dive,gte=0"`
	Demand       []float64   `yaml:"demand" validate:"min=1,dive,gte=0"`
	Costs        [][]float64 `yaml:"costs" validate:"min=1,dive,min=1,dive,gte=0"`
	SupplyLabels []string    `yaml:"supply_labels,omitempty" validate:"omitempty,dive,required"`
	DemandLabels []string    `yaml:"demand_labels,omitempty" validate:"omitempty,dive,required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	return validate
}

// Problem validates s and builds the immutable transport.Problem.
//
// Errors: *ValidationError (wrapping ErrInputFormat) for tag violations and
// for any shape error reported by transport.NewProblem.
func (s Spec) Problem() (*transport.Problem, error) {
	if err := specValidator().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, invalid(fe.Namespace(), "violates %q rule (value %v)", fe.Tag(), fe.Value())
		}

		return nil, fmt.Errorf("input: validate: %w", err)
	}

	p, err := transport.NewProblem(s.Supply, s.Demand, s.Costs, s.SupplyLabels, s.DemandLabels)
	if err != nil {
		return nil, &ValidationError{Field: "Spec", Reason: err.Error()}
	}

	return p, nil
}
