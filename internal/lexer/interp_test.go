package lexer

import (
	"testing"
)

// literalSpan builds the span a STRING token would carry for a literal
// whose opening quote sits at the given column/offset on line 1.
func literalSpan(inner string, column, offset int) Span {
	return Span{
		Filename: "test.cv",
		Line:     1,
		Column:   column,
		Start:    offset,
		End:      offset + len(inner) + 2,
	}
}

func TestSplitString_PlainText(t *testing.T) {
	parts, err := SplitString("hello", literalSpan("hello", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].Interp {
		t.Fatalf("expected a text part")
	}
	if parts[0].Text != "hello" {
		t.Fatalf("text wrong: %q", parts[0].Text)
	}
}

func TestSplitString_MultiByteTextByteOffsets(t *testing.T) {
	// é is two bytes: the interpolation's byte offset is one past its
	// rune-counted column.
	inner := "é${a}!"
	parts, err := SplitString(inner, literalSpan(inner, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}

	if parts[0].Text != "é" || parts[0].Span.Start != 1 || parts[0].Span.End != 3 {
		t.Fatalf("text part wrong: %q %d..%d",
			parts[0].Text, parts[0].Span.Start, parts[0].Span.End)
	}
	if parts[1].Text != "a" || parts[1].Span.Start != 5 || parts[1].Span.Column != 5 {
		t.Fatalf("interp part wrong: %q start=%d col=%d",
			parts[1].Text, parts[1].Span.Start, parts[1].Span.Column)
	}
	if parts[2].Text != "!" || parts[2].Span.Start != 7 || parts[2].Span.Column != 7 {
		t.Fatalf("tail part wrong: %q start=%d col=%d",
			parts[2].Text, parts[2].Span.Start, parts[2].Span.Column)
	}
}

func TestSplitString_EscapesDecoded(t *testing.T) {
	parts, err := SplitString(`a\nb\tc\\d\"e\$f`, literalSpan("", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	want := "a\nb\tc\\d\"e$f"
	if parts[0].Text != want {
		t.Fatalf("decoded text wrong: %q, want %q", parts[0].Text, want)
	}
}

func TestSplitString_SingleInterpolation(t *testing.T) {
	parts, err := SplitString("hi ${name}!", literalSpan("hi ${name}!", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if parts[0].Interp || parts[0].Text != "hi " {
		t.Fatalf("part 0 wrong: %+v", parts[0])
	}
	if !parts[1].Interp || parts[1].Text != "name" {
		t.Fatalf("part 1 wrong: %+v", parts[1])
	}
	if parts[2].Interp || parts[2].Text != "!" {
		t.Fatalf("part 2 wrong: %+v", parts[2])
	}
}

func TestSplitString_InterpolationSpanRebasing(t *testing.T) {
	// Literal `"x${a}"` with the opening quote at column 9, offset 8.
	inner := "x${a}"
	parts, err := SplitString(inner, literalSpan(inner, 9, 8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}

	// Inner text begins one past the quote: column 10, offset 9.
	if got := parts[0].Span; got.Column != 10 || got.Start != 9 || got.End != 10 {
		t.Fatalf("text span wrong: col=%d %d..%d", got.Column, got.Start, got.End)
	}
	// Expression source `a` starts after the ${: column 13, offset 12.
	if got := parts[1].Span; got.Column != 13 || got.Start != 12 || got.End != 13 {
		t.Fatalf("interp span wrong: col=%d %d..%d", got.Column, got.Start, got.End)
	}
}

func TestSplitString_NestedBraces(t *testing.T) {
	parts, err := SplitString("v=${f({x})}", literalSpan("", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if !parts[1].Interp || parts[1].Text != "f({x})" {
		t.Fatalf("nested braces not balanced: %+v", parts[1])
	}
}

func TestSplitString_EscapedDollarSuppressesInterpolation(t *testing.T) {
	parts, err := SplitString(`\${nope}`, literalSpan("", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].Interp {
		t.Fatalf("escaped dollar must not open an interpolation")
	}
	if parts[0].Text != "${nope}" {
		t.Fatalf("text wrong: %q", parts[0].Text)
	}
}

func TestSplitString_AdjacentInterpolations(t *testing.T) {
	parts, err := SplitString("${a}${b}", literalSpan("", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if !parts[0].Interp || parts[0].Text != "a" || !parts[1].Interp || parts[1].Text != "b" {
		t.Fatalf("adjacent interpolations wrong: %+v", parts)
	}
}

func TestSplitString_UnterminatedInterpolation(t *testing.T) {
	_, err := SplitString("x${a", literalSpan("", 1, 0))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Kind != ErrUnterminatedInterp {
		t.Fatalf("wrong error kind: %v", err.Kind)
	}
}

func TestSplitString_UnknownEscape(t *testing.T) {
	_, err := SplitString(`a\qb`, literalSpan("", 1, 0))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Kind != ErrIllegalRune {
		t.Fatalf("wrong error kind: %v", err.Kind)
	}
}
