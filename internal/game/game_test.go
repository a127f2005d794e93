package game

import (
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

func iptr(v int) *int { return &v }

func TestApplyStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    models.GameStatus
		req     UpdateStatusRequest
		wantErr bool
	}{
		{"tip off", models.GameStatusScheduled, UpdateStatusRequest{Status: "live"}, false},
		{"final", models.GameStatusLive, UpdateStatusRequest{Status: "completed", HomeScore: iptr(101), AwayScore: iptr(99)}, false},
		{"postponed", models.GameStatusScheduled, UpdateStatusRequest{Status: "cancelled"}, false},
		{"skip live", models.GameStatusScheduled, UpdateStatusRequest{Status: "completed"}, true},
		{"reopen", models.GameStatusCompleted, UpdateStatusRequest{Status: "live"}, true},
		{"uncancel", models.GameStatusCancelled, UpdateStatusRequest{Status: "scheduled"}, true},
		{"scores while live", models.GameStatusScheduled, UpdateStatusRequest{Status: "live", HomeScore: iptr(2)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &models.Game{HomeTeamID: 1, AwayTeamID: 2, Status: tt.from}
			err := applyStatus(g, tt.req)
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyStatus: %v", err)
			}
			if g.Status != models.GameStatus(tt.req.Status) {
				t.Fatalf("status = %s", g.Status)
			}
			if err := g.Validate(); err != nil {
				t.Fatalf("resulting game invalid: %v", err)
			}
		})
	}
}

func TestGameResponseWinner(t *testing.T) {
	g := &models.Game{HomeTeamID: 1, AwayTeamID: 2, Status: models.GameStatusCompleted, HomeScore: iptr(90), AwayScore: iptr(95)}
	resp := newGameResponse(g)
	if resp.WinnerID == nil || *resp.WinnerID != 2 {
		t.Fatalf("winner = %v", resp.WinnerID)
	}
	g.AwayScore = iptr(90)
	if newGameResponse(g).WinnerID != nil {
		t.Fatal("tie should have no winner")
	}
}
