package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateExampleTemplates(t *testing.T) {
	root := t.TempDir()
	ctx, err := NewDirContext(filepath.Join("..", "examples", "templates"), root)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := New(WithLogger(quietLogger())).Generate(ctx, "UserProfile", []string{"api", "entity"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if summary.Generated() != 2 || summary.Count(SkippedTagMismatch) != 1 {
		t.Fatalf("Unexpected outcomes: %+v", summary.Files)
	}

	content, err := os.ReadFile(filepath.Join(root, "src", "Controllers", "UserProfileController.cs"))
	if err != nil {
		t.Fatal(err)
	}
	want := `namespace App.Controllers;

[ApiController]
[Route("api/user-profile")]
public class UserProfileController : ControllerBase
{
    public const string Resource = "USERPROFILE";
}`
	if string(content) != want {
		t.Errorf("Output mismatch.\nExpected: %q\nGot: %q", want, string(content))
	}
}
