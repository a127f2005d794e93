package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
)

func TestSendAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		state  string
	}{
		{"invalid", common.InvalidInput("bad jersey"), http.StatusBadRequest, "error"},
		{"missing", common.NotFound("game", 9), http.StatusNotFound, "error"},
		{"denied", common.Forbidden("not on staff"), http.StatusForbidden, "error"},
		{"duplicate", common.Conflict("already recorded"), http.StatusConflict, "error"},
		{"wrapped", fmt.Errorf("load: %w", common.NotFound("team", 1)), http.StatusNotFound, "error"},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, "fail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendAppError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.state || body.Code != tt.status {
				t.Fatalf("body = %+v", body)
			}
			if tt.status == http.StatusInternalServerError && body.Message == tt.err.Error() {
				t.Fatal("internal error detail leaked")
			}
			if !c.IsAborted() {
				t.Fatal("context not aborted")
			}
		})
	}
}

func TestSendPaginated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendPaginated(c, http.StatusOK, "", []int{1, 2}, 45, 2, 20)

	var body struct {
		Pagination Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	p := body.Pagination
	if p.TotalPages != 3 || !p.HasNextPage || !p.HasPrevPage || *p.NextPage != 3 || *p.PreviousPage != 1 {
		t.Fatalf("pagination = %+v", p)
	}
}

func TestNewPaginationEdges(t *testing.T) {
	empty := NewPagination(0, 1, 20)
	if empty.TotalPages != 0 || empty.HasNextPage || empty.HasPrevPage {
		t.Fatalf("empty = %+v", empty)
	}
	last := NewPagination(40, 2, 20)
	if last.TotalPages != 2 || last.HasNextPage || last.NextPage != nil {
		t.Fatalf("last page = %+v", last)
	}
	fallback := NewPagination(5, 0, 0)
	if fallback.PageSize != 20 || fallback.CurrentPage != 1 || fallback.TotalPages != 1 {
		t.Fatalf("defaults = %+v", fallback)
	}
}
