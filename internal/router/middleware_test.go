package router

import "testing"

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"wildcard", "https://a.example.com", []string{"*"}, false, "*"},
		{"wildcard with credentials echoes origin", "https://a.example.com", []string{"*"}, true, "https://a.example.com"},
		{"exact match", "https://shop.example.com", []string{"https://shop.example.com"}, false, "https://shop.example.com"},
		{"case insensitive match", "https://Shop.Example.com", []string{"https://shop.example.com"}, false, "https://Shop.Example.com"},
		{"no match", "https://evil.example.com", []string{"https://shop.example.com"}, false, ""},
		{"empty origin", "", []string{"https://shop.example.com"}, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	if v, ok := toInt64(int64(7)); !ok || v != 7 {
		t.Fatalf("int64 conversion failed: %v %v", v, ok)
	}
	if v, ok := toInt64(float64(3)); !ok || v != 3 {
		t.Fatalf("float64 conversion failed: %v %v", v, ok)
	}
	if _, ok := toInt64("7"); ok {
		t.Fatalf("string should not convert")
	}
}
