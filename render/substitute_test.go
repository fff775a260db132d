package render

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	vars := Derive("UserProfile")

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "all placeholders",
			text: "{{EntityName}} {{entityName}} {{ENTITY_NAME}} {{entity-name}}",
			want: "UserProfile userProfile USERPROFILE user-profile",
		},
		{
			name: "repeated placeholder",
			text: "type {{EntityName}} struct{}\nfunc New{{EntityName}}() *{{EntityName}} { return nil }",
			want: "type UserProfile struct{}\nfunc NewUserProfile() *UserProfile { return nil }",
		},
		{
			name: "unknown placeholder kept",
			text: "{{Unknown}} {{EntityName}}",
			want: "{{Unknown}} UserProfile",
		},
		{
			name: "whitespace inside braces is not a placeholder",
			text: "{{ EntityName }}",
			want: "{{ EntityName }}",
		},
		{
			name: "name is case-sensitive",
			text: "{{entityname}}",
			want: "{{entityname}}",
		},
		{
			name: "output path",
			text: "src/{{entity-name}}/{{EntityName}}.cs",
			want: "src/user-profile/UserProfile.cs",
		},
		{
			name: "no placeholders",
			text: "plain text",
			want: "plain text",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.text, vars); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderLeavesNoKnownPlaceholders(t *testing.T) {
	vars := Derive("product")
	text := "{{EntityName}}{{EntityName}}-{{entityName}}-{{ENTITY_NAME}}-{{entity-name}}"

	got := Render(text, vars)
	for _, name := range VariableNames {
		if strings.Contains(got, Placeholder(name)) {
			t.Errorf("rendered text still contains %s: %q", Placeholder(name), got)
		}
	}
}

func TestRenderPartialVariableSet(t *testing.T) {
	vars := VariableSet{VarPascal: "Order"}

	got := Render("{{EntityName}} {{entityName}}", vars)
	if want := "Order {{entityName}}"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
