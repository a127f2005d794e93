package docs

import (
	"encoding/json"
	"testing"
)

func TestDocIsValidJSON(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.BasePath != "/api" {
		t.Fatalf("basePath = %q", doc.BasePath)
	}
	for _, path := range []string{"/auth/login", "/teams/{team_id}/record", "/performances/{performance_id}", "/users/{user_id}/is-coach"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
