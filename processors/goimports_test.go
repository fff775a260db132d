package processors

import (
	"strings"
	"testing"
)

func TestGoImports_ProcessContent(t *testing.T) {
	processor := NewGoImports()

	input := `package product

import (
	"fmt"
	"strings"
)

type Product struct{ Name string }

func (p Product) Key() string {
return strings.ToLower(p.Name)
}
`

	result, err := processor.ProcessContent("generated/product.go", []byte(input))
	if err != nil {
		t.Fatalf("ProcessContent() error = %v", err)
	}

	output := string(result)
	if strings.Contains(output, `"fmt"`) {
		t.Errorf("unused import not removed:\n%s", output)
	}
	if !strings.Contains(output, `"strings"`) {
		t.Errorf("used import removed:\n%s", output)
	}
	if !strings.Contains(output, "\treturn strings.ToLower(p.Name)") {
		t.Errorf("body not formatted:\n%s", output)
	}
}

func TestGoImports_NonGoFileUnchanged(t *testing.T) {
	input := "public class Product {  }"

	result, err := NewGoImports().ProcessContent("src/Product.cs", []byte(input))
	if err != nil {
		t.Fatalf("ProcessContent() error = %v", err)
	}
	if string(result) != input {
		t.Errorf("content changed: %q", result)
	}
}

func TestGoImports_InvalidSource(t *testing.T) {
	_, err := NewGoImports().ProcessContent("broken.go", []byte("package x\nfunc {"))
	if err == nil {
		t.Fatal("expected error for invalid Go source")
	}
}

func TestIsGoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.go", true},
		{"file.GO", true},
		{"dir/product_repository.go", true},
		{"file.txt", false},
		{"go.mod", false},
		{"file", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isGoFile(tt.path); got != tt.want {
				t.Errorf("isGoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
