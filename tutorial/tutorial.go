// Package tutorial walks through the basic building blocks of a program:
// variables, arithmetic, conditionals, loops, functions, lists, records and
// error handling. Each step writes what it demonstrates to an io.Writer.
package tutorial

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownStep is returned by RunStep for a name that is not in Steps.
var ErrUnknownStep = errors.New("unknown step")

// Lesson holds the values the steps operate on.
type Lesson struct {
	Name      string
	Age       int
	Height    float64
	IsStudent bool

	// A and B are the operands of the arithmetic and division steps.
	A int
	B int
}

// Default returns the lesson with its literal values.
func Default() Lesson {
	return Lesson{
		Name:      "Alice",
		Age:       25,
		Height:    5.6,
		IsStudent: true,
		A:         10,
		B:         3,
	}
}

// Person is the record built by the mappings step.
type Person struct {
	Name      string
	Age       int
	IsStudent bool
}

// Step is a single named demonstration.
type Step struct {
	Name  string
	Title string
	run   func(p *printer, l Lesson)
}

var steps = []Step{
	{Name: "hello", Title: "Print a message", run: hello},
	{Name: "variables", Title: "Variables and data types", run: variables},
	{Name: "arithmetic", Title: "Basic arithmetic operations", run: arithmetic},
	{Name: "conditionals", Title: "Conditional statements", run: conditionals},
	{Name: "for-loop", Title: "For loop", run: forLoop},
	{Name: "while-loop", Title: "While loop", run: whileLoop},
	{Name: "functions", Title: "Functions", run: functions},
	{Name: "lists", Title: "Lists", run: lists},
	{Name: "mappings", Title: "Records", run: mappings},
	{Name: "errors", Title: "Error handling", run: handleErrors},
}

// Steps returns the steps in the order Run executes them.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Run executes every step in order, writing to w. The only errors
// returned are failures to write to w.
func Run(w io.Writer, l Lesson) error {
	p := &printer{w: w}
	for _, s := range steps {
		s.run(p, l)
		if p.err != nil {
			return fmt.Errorf("step %s: %w", s.Name, p.err)
		}
	}
	return nil
}

// RunStep executes the single step called name.
func RunStep(w io.Writer, l Lesson, name string) error {
	for _, s := range steps {
		if s.Name != name {
			continue
		}
		p := &printer{w: w}
		s.run(p, l)
		if p.err != nil {
			return fmt.Errorf("step %s: %w", s.Name, p.err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// Transcript returns everything Run would write.
func Transcript(l Lesson) (string, error) {
	var sb strings.Builder
	if err := Run(&sb, l); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// printer remembers the first write error and drops later output.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", a...)
}

func hello(p *printer, _ Lesson) {
	p.println("Hello, World!")
}

// variables only binds values; the lesson shows declarations, not output.
func variables(_ *printer, l Lesson) {
	var (
		name      string  = l.Name
		age       int     = l.Age
		height    float64 = l.Height
		isStudent bool    = l.IsStudent
	)
	_, _, _, _ = name, age, height, isStudent
}

func arithmetic(p *printer, l Lesson) {
	a, b := l.A, l.B
	p.printf("Addition: %d", a+b)
	p.printf("Subtraction: %d", a-b)
	p.printf("Multiplication: %d", a*b)
	if q, err := Divide(a, b); err == nil {
		p.printf("Division: %v", q)
	} else {
		p.println("Division:", err)
	}
	if b != 0 {
		p.printf("Floor Division: %d", FloorDiv(a, b))
		p.printf("Modulus: %d", Mod(a, b))
	}
	p.printf("Exponentiation: %d", Pow(a, b))
}

func conditionals(p *printer, l Lesson) {
	if l.Age > 18 {
		p.printf("%s is an adult.", l.Name)
	} else {
		p.printf("%s is a minor.", l.Name)
	}
}

func forLoop(p *printer, _ Lesson) {
	for i := range 5 {
		p.printf("Iteration %d", i)
	}
}

func whileLoop(p *printer, _ Lesson) {
	count := 0
	for count < 3 {
		p.printf("Count is %d", count)
		count++
	}
}

func functions(p *printer, l Lesson) {
	p.println(Greet(l.Name))
}

func lists(p *printer, _ Lesson) {
	fruits := []string{"apple", "banana", "cherry"}
	fruits = append(fruits, "date")
	p.println("Fruits:", FormatList(fruits))
}

func mappings(p *printer, l Lesson) {
	person := Person{Name: l.Name, Age: l.Age, IsStudent: l.IsStudent}
	p.println("Person's name:", person.Name)
}

func handleErrors(p *printer, l Lesson) {
	if _, err := Divide(l.A, 0); errors.Is(err, ErrDivisionByZero) {
		p.println("Cannot divide by zero!")
	}
}
