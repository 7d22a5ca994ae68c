package caseio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Step is one restart report step: a simulation timestamp plus one
// solution array per stored quantity, one value per active cell.
type Step struct {
	Days      float64              `json:"days"`
	Solutions map[string][]float64 `json:"solutions"`
}

// Restart holds the ordered report steps of one case.
type Restart struct {
	steps []Step
}

func NewRestart(steps []Step) *Restart {
	return &Restart{steps: steps}
}

func LoadRestart(path string) (*Restart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("caseio: parse restart %s: %w", path, err)
	}
	return &Restart{steps: steps}, nil
}

// NumRecords counts the report steps that carry the given quantity.
func (r *Restart) NumRecords(quantity string) int {
	n := 0
	for _, step := range r.steps {
		if _, ok := step.Solutions[quantity]; ok {
			n++
		}
	}
	return n
}

func (r *Restart) Days(step int) float64 {
	return r.steps[step].Days
}

// Solution returns the stored array for quantity at the given step.
func (r *Restart) Solution(step int, quantity string) ([]float64, error) {
	if step < 0 || step >= len(r.steps) {
		return nil, fmt.Errorf("caseio: report step %d out of range (have %d)", step, len(r.steps))
	}
	sol, ok := r.steps[step].Solutions[quantity]
	if !ok {
		return nil, fmt.Errorf("caseio: report step %d has no %s solution", step, quantity)
	}
	return sol, nil
}
