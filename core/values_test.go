package core

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collectValues(t *testing.T, v *Values) ([]uint32, error) {
	t.Helper()
	var out []uint32
	for {
		n, err := v.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, n)
	}
}

func TestValuesNext(t *testing.T) {
	input := "\n 12 \n12  4444 44 4444 11 2 3 13  \n  44 \n\n4\n1\n"
	want := []uint32{12, 12, 4444, 44, 4444, 11, 2, 3, 13, 44, 4, 1}

	got, err := collectValues(t, NewValues(newScanner(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestValuesEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace only", " \n\n ", 0},
		{"no trailing whitespace", "1 2 3", 3},
		{"trailing whitespace", "1 2 3\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectValues(t, NewValues(newScanner(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d values, want %d", len(got), tt.want)
			}
		})
	}
}

func TestValuesTerminalAfterError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		before  int
		wantErr error
	}{
		{"bad byte before token", "1 2 x 3 4 5", 2, ErrFormat},
		{"bad byte inside token", "1 2x 3 4 5", 1, ErrFormat},
		{"overflow", "1 99999999999 3 4", 1, ErrOverflow},
		{"tab separator", "1\t2 3", 0, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValues(newScanner(tt.input))
			got, err := collectValues(t, v)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != tt.before {
				t.Errorf("got %d values before the error, want %d", len(got), tt.before)
			}
			// Valid tokens follow the bad one, but the stream must stay finished.
			for i := 0; i < 3; i++ {
				n, err := v.Next()
				if err != io.EOF {
					t.Fatalf("Next() after error = (%d, %v), want io.EOF", n, err)
				}
			}
		})
	}
}

func TestValuesIOError(t *testing.T) {
	v := NewValues(NewScanner(&failingReader{data: []byte("1 2"), err: errBroken}))

	n, err := v.Next()
	if err != nil || n != 1 {
		t.Fatalf("Next() = (%d, %v), want (1, nil)", n, err)
	}
	if _, err = v.Next(); !errors.Is(err, errBroken) {
		t.Fatalf("Next() error = %v, want wrapped source error", err)
	}
	if _, err = v.Next(); err != io.EOF {
		t.Errorf("Next() after I/O error = %v, want io.EOF", err)
	}
}

func TestValuesAll(t *testing.T) {
	var got []uint32
	var errs int
	for n, err := range NewValues(newScanner("1 2 3 x 4")).All() {
		if err != nil {
			errs++
			continue
		}
		got = append(got, n)
	}
	if len(got) != 3 {
		t.Errorf("got %d values, want 3", len(got))
	}
	if errs != 1 {
		t.Errorf("got %d errors, want 1", errs)
	}
}

func TestValuesAllEarlyStop(t *testing.T) {
	v := NewValues(newScanner("1 2 3 4"))
	for n := range v.All() {
		if n == 2 {
			break
		}
	}
	n, err := v.Next()
	if err != nil || n != 3 {
		t.Errorf("Next() after break = (%d, %v), want (3, nil)", n, err)
	}
}

func TestValuesLargeInput(t *testing.T) {
	input := strings.Repeat("255 ", 10000)
	got, err := collectValues(t, NewValues(newScanner(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 10000 {
		t.Errorf("got %d values, want 10000", len(got))
	}
}
