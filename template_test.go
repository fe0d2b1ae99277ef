package i18n

import (
	"bytes"
	"testing"
	"text/template"
)

func TestTemplateHelpers(t *testing.T) {
	translator := newTestTranslator(t,
		WithLocale("en"),
		WithMessages(Messages{
			"en": {
				"greeting": "Hello {name}!",
				"apple":    "one apple|{n} apples",
			},
		}),
	)

	tmpl := template.Must(template.New("view").
		Funcs(TemplateHelpers(translator)).
		Parse(`{{t "greeting" .Params}} {{tc "apple" .Count .Params}} [{{locale}}]`))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Count  int
		Params Params
	}{
		Count:  3,
		Params: Params{"name": "Alice", "n": 3},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "Hello Alice! 3 apples [en]"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}
}

func TestAsCount(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		nan   bool
	}{
		{name: "int", value: 2, want: 2},
		{name: "int64", value: int64(3), want: 3},
		{name: "uint", value: uint(4), want: 4},
		{name: "float64", value: 1.5, want: 1.5},
		{name: "numeric string", value: "7", want: 7},
		{name: "bad string", value: "seven", nan: true},
		{name: "unsupported type", value: struct{}{}, nan: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := asCount(tc.value)
			if tc.nan {
				if got == got {
					t.Fatalf("asCount(%v) = %v, want NaN", tc.value, got)
				}
				return
			}
			if got != tc.want {
				t.Fatalf("asCount(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
