package automates_test

import (
	"context"
	"fmt"

	"github.com/KongaYvan/Automates"
)

func ExampleEngine_Explain() {
	eng, err := automates.New(automates.ConstructionRequest{
		States: []automates.StateSpec{
			{Name: "A", Initial: true},
			{Name: "B", Final: true},
		},
		Transitions: []automates.TransitionSpec{
			{From: "A", To: "B", Symbol: 'a'},
			{From: "B", To: "B", Symbol: 'b'},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, in := range []string{"abb", "aba", ""} {
		_, why := eng.Explain(context.Background(), in)
		fmt.Printf("%q: %s\n", in, why)
	}
	// Output:
	// "abb": string accepted
	// "aba": no transition from "B" on 'a' at index 2
	// "": string fully consumed but state "A" is not final
}

func ExampleEngine_Verdict() {
	eng, _ := automates.New(automates.ConstructionRequest{
		States: []automates.StateSpec{
			{Name: "A", Initial: true},
			{Name: "B"},
			{Name: "C", Final: true},
		},
		Transitions: []automates.TransitionSpec{
			{From: "A", To: "B", Symbol: 'x'},
			{From: "A", To: "C", Symbol: 'x'},
		},
	})

	fmt.Println(eng.Verdict())
	// Output:
	// not deterministic: state "A" has several transitions on 'x' (B, C)
}
