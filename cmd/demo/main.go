// Command demo replays a scenario of operations against a red black tree,
// reporting each step, the final in order traversal, and an invariant
// audit.
//
// Usage:
//
//	demo [scenario.yaml]
//
// Without an argument a built in scenario runs.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/g-m-twostay/go-structs/Trees"
)

const defaultScenario = `name: textbook insert and delete
hint: 8
steps:
  - {op: insert, key: 50}
  - {op: insert, key: 30}
  - {op: insert, key: 70}
  - {op: insert, key: 20}
  - {op: insert, key: 40}
  - {op: insert, key: 60}
  - {op: insert, key: 80}
  - {op: has, key: 40}
  - {op: remove, key: 20}
  - {op: remove, key: 30}
  - {op: remove, key: 50}
  - {op: remove, key: 50}
`

type step struct {
	Op  string `yaml:"op"`
	Key int    `yaml:"key"`
}

type scenario struct {
	Name  string `yaml:"name"`
	Hint  uint32 `yaml:"hint"`
	Steps []step `yaml:"steps"`
}

func (s *scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "insert", "remove", "has":
		default:
			return fmt.Errorf("step %d of %q: unknown op %q", i, s.Name, st.Op)
		}
	}
	return nil
}

func load() (*scenario, error) {
	src := []byte(defaultScenario)
	if len(os.Args) > 1 {
		var err error
		if src, err = os.ReadFile(os.Args[1]); err != nil {
			return nil, fmt.Errorf("reading scenario: %w", err)
		}
	}
	var s scenario
	if err := yaml.Unmarshal(src, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func main() {
	s, err := load()
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	fmt.Printf("scenario: %s (%d steps)\n\n", s.Name, len(s.Steps))
	t := Trees.NewRB[int](s.Hint)
	for i, st := range s.Steps {
		var outcome string
		switch st.Op {
		case "insert":
			if outcome = "inserted"; !t.Insert(st.Key) {
				outcome = "already present"
			}
		case "remove":
			if outcome = "removed"; !t.Remove(st.Key) {
				outcome = "not present"
			}
		case "has":
			outcome = fmt.Sprint(t.Has(st.Key))
		}
		fmt.Printf("%2d. %s %d: %s\n", i+1, st.Op, st.Key, outcome)
		if t.Corrupt() {
			log.Fatalf("demo: tree corrupt after step %d (%s %d)", i+1, st.Op, st.Key)
		}
	}
	fmt.Printf("\nsize: %d\nin order:", t.Size())
	next := t.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		fmt.Printf(" %d", v)
	}
	fmt.Println()
	fmt.Println("invariants hold")
}
