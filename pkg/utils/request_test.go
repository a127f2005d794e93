package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestPagination(t *testing.T) {
	tests := []struct {
		target      string
		page, limit int
	}{
		{"/", 1, 20},
		{"/?page=3&limit=5", 3, 5},
		{"/?page=-2&limit=0", 1, 20},
		{"/?limit=1000", 1, 100},
		{"/?page=abc", 1, 20},
	}
	for _, tt := range tests {
		c, _ := testContext(tt.target)
		page, limit := Pagination(c)
		if page != tt.page || limit != tt.limit {
			t.Errorf("%s: got %d/%d, want %d/%d", tt.target, page, limit, tt.page, tt.limit)
		}
	}
}

func TestParseIDParam(t *testing.T) {
	c, w := testContext("/")
	c.Params = gin.Params{{Key: "team_id", Value: "12"}}
	if id, ok := ParseIDParam(c, "team_id"); !ok || id != 12 {
		t.Fatalf("got %d %v", id, ok)
	}

	for _, raw := range []string{"0", "-1", "x"} {
		c, w = testContext("/")
		c.Params = gin.Params{{Key: "team_id", Value: raw}}
		if _, ok := ParseIDParam(c, "team_id"); ok {
			t.Fatalf("%q accepted", raw)
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%q: status %d", raw, w.Code)
		}
	}
}

func TestOptionalQueries(t *testing.T) {
	c, _ := testContext("/?team_id=4&active=true")
	team, ok := OptionalUint(c, "team_id")
	if !ok || team == nil || *team != 4 {
		t.Fatalf("team_id = %v %v", team, ok)
	}
	active, ok := OptionalBool(c, "active")
	if !ok || active == nil || !*active {
		t.Fatalf("active = %v %v", active, ok)
	}
	if v, ok := OptionalUint(c, "missing"); !ok || v != nil {
		t.Fatal("missing parameter should be nil")
	}

	c, w := testContext("/?active=maybe")
	if _, ok := OptionalBool(c, "active"); ok || w.Code != http.StatusBadRequest {
		t.Fatalf("bad bool accepted: %d", w.Code)
	}
}
