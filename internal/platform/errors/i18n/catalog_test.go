package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if blank := GetCatalog(""); blank != base {
		t.Fatal("expected blank locale to resolve to en-US catalog")
	}
}

func TestFormatNumeralMessages(t *testing.T) {
	tests := []struct {
		locale   string
		code     Code
		metadata map[string]string
		want     string
	}{
		{
			locale:   "en-US",
			code:     "NUMERAL_INVALID_CHARACTER",
			metadata: map[string]string{"Character": "A"},
			want:     "Invalid Roman character 'A'",
		},
		{
			locale:   "en-US",
			code:     "NUMERAL_ILLEGAL_ASCENT",
			metadata: map[string]string{"Least": "1", "Value": "5"},
			want:     "Cannot go up: 1 to 5",
		},
		{
			locale: "en-US",
			code:   "NUMERAL_EMPTY_INPUT",
			want:   "A non-empty Roman numeral string is required",
		},
		{
			locale:   "pt-BR",
			code:     "NUMERAL_OUT_OF_RANGE",
			metadata: map[string]string{"Value": "4000"},
			want:     "Apenas inteiros de 0 a 3999 são permitidos, recebido 4000",
		},
	}
	for _, tc := range tests {
		t.Run(tc.locale+"/"+tc.code, func(t *testing.T) {
			got := GetCatalog(tc.locale).Format(tc.code, tc.metadata)
			if got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
	if cat.Format("code", map[string]string{"Name": "X"}) != "hello X" {
		t.Fatal("expected cached template to render metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatTemplateExecutionErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ call .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ call .Name }}" {
		t.Fatal("expected template fallback on execute error")
	}
}
