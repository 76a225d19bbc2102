package tutorial

import (
	"errors"
	"strings"
	"testing"
)

const wantTranscript = `Hello, World!
Addition: 13
Subtraction: 7
Multiplication: 30
Division: 3.3333333333333335
Floor Division: 3
Modulus: 1
Exponentiation: 1000
Alice is an adult.
Iteration 0
Iteration 1
Iteration 2
Iteration 3
Iteration 4
Count is 0
Count is 1
Count is 2
Hello, Alice!
Fruits: [apple, banana, cherry, date]
Person's name: Alice
Cannot divide by zero!
`

func TestTranscript(t *testing.T) {
	got, err := Transcript(Default())
	if err != nil {
		t.Fatalf("Transcript returned error: %v", err)
	}
	if got != wantTranscript {
		t.Errorf("Unexpected transcript:\ngot:\n%s\nwant:\n%s", got, wantTranscript)
	}
}

func TestTranscriptIsRepeatable(t *testing.T) {
	first, err := Transcript(Default())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Transcript(Default())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical transcripts, got:\n%s\nand:\n%s", first, second)
	}
}

func TestMinorFlipsOnlyConditional(t *testing.T) {
	for _, age := range []int{18, 17, 0} {
		l := Default()
		l.Age = age
		got, err := Transcript(l)
		if err != nil {
			t.Fatalf("age %d: %v", age, err)
		}
		want := strings.Replace(wantTranscript, "Alice is an adult.", "Alice is a minor.", 1)
		if got != want {
			t.Errorf("age %d: unexpected transcript:\n%s", age, got)
		}
	}
}

func TestRunStep(t *testing.T) {
	tests := []struct {
		step string
		want string
	}{
		{"hello", "Hello, World!\n"},
		{"variables", ""},
		{"conditionals", "Alice is an adult.\n"},
		{"while-loop", "Count is 0\nCount is 1\nCount is 2\n"},
		{"functions", "Hello, Alice!\n"},
		{"lists", "Fruits: [apple, banana, cherry, date]\n"},
		{"mappings", "Person's name: Alice\n"},
		{"errors", "Cannot divide by zero!\n"},
	}
	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			var sb strings.Builder
			if err := RunStep(&sb, Default(), tt.step); err != nil {
				t.Fatalf("RunStep(%q) returned error: %v", tt.step, err)
			}
			if sb.String() != tt.want {
				t.Errorf("RunStep(%q) = %q, want %q", tt.step, sb.String(), tt.want)
			}
		})
	}
}

func TestRunStepUnknown(t *testing.T) {
	var sb strings.Builder
	err := RunStep(&sb, Default(), "recursion")
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("Expected ErrUnknownStep, got %v", err)
	}
	if !strings.Contains(err.Error(), `"recursion"`) {
		t.Errorf("Expected error to name the step, got: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("Expected no output, got %q", sb.String())
	}
}

func TestStepsOrder(t *testing.T) {
	var names []string
	for _, s := range Steps() {
		names = append(names, s.Name)
	}
	want := "hello variables arithmetic conditionals for-loop while-loop functions lists mappings errors"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("Steps() = %s, want %s", got, want)
	}
}

var errBroken = errors.New("broken pipe")

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errBroken
	}
	w.remaining--
	return len(p), nil
}

func TestRunWriteError(t *testing.T) {
	w := &failingWriter{remaining: 1}
	err := Run(w, Default())
	if !errors.Is(err, errBroken) {
		t.Fatalf("Expected write error, got %v", err)
	}
	if !strings.Contains(err.Error(), "step arithmetic") {
		t.Errorf("Expected error to name the failing step, got: %v", err)
	}
}

func TestDivide(t *testing.T) {
	q, err := Divide(10, 3)
	if err != nil {
		t.Fatalf("Divide(10, 3) returned error: %v", err)
	}
	if q != 10.0/3.0 {
		t.Errorf("Divide(10, 3) = %v", q)
	}
	if _, err := Divide(10, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Divide(10, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestFloorDivAndMod(t *testing.T) {
	tests := []struct {
		a, b     int
		quo, mod int
	}{
		{10, 3, 3, 1},
		{-10, 3, -4, 2},
		{10, -3, -4, -2},
		{-10, -3, 3, -1},
		{9, 3, 3, 0},
		{-9, 3, -3, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.quo {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.quo)
		}
		if got := Mod(tt.a, tt.b); got != tt.mod {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
		if FloorDiv(tt.a, tt.b)*tt.b+Mod(tt.a, tt.b) != tt.a {
			t.Errorf("FloorDiv/Mod identity broken for %d, %d", tt.a, tt.b)
		}
	}
}

func TestPow(t *testing.T) {
	tests := []struct{ base, exp, want int }{
		{10, 3, 1000},
		{2, 10, 1024},
		{-2, 3, -8},
		{7, 0, 1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := Pow(tt.base, tt.exp); got != tt.want {
			t.Errorf("Pow(%d, %d) = %d, want %d", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestFormatListAfterAppend(t *testing.T) {
	fruits := []string{"apple", "banana", "cherry"}
	fruits = append(fruits, "date")
	if got := FormatList(fruits); got != "[apple, banana, cherry, date]" {
		t.Errorf("FormatList = %s", got)
	}
	if got := FormatList(nil); got != "[]" {
		t.Errorf("FormatList(nil) = %s, want []", got)
	}
}
