package tutorial_test

import (
	"os"

	"github.com/go-delve/mcp-basics/tutorial"
)

func ExampleRun() {
	tutorial.Run(os.Stdout, tutorial.Default())
	// Output:
	// Hello, World!
	// Addition: 13
	// Subtraction: 7
	// Multiplication: 30
	// Division: 3.3333333333333335
	// Floor Division: 3
	// Modulus: 1
	// Exponentiation: 1000
	// Alice is an adult.
	// Iteration 0
	// Iteration 1
	// Iteration 2
	// Iteration 3
	// Iteration 4
	// Count is 0
	// Count is 1
	// Count is 2
	// Hello, Alice!
	// Fruits: [apple, banana, cherry, date]
	// Person's name: Alice
	// Cannot divide by zero!
}

func ExampleRunStep() {
	l := tutorial.Default()
	l.Age = 16
	tutorial.RunStep(os.Stdout, l, "conditionals")
	// Output:
	// Alice is a minor.
}
