package models

// BoxScore holds the raw counting stats of one player or team in one game.
// Derived values (total rebounds, percentages) are never stored.
type BoxScore struct {
	MinutesPlayed          int `json:"minutes_played" gorm:"not null;default:0"`
	Points                 int `json:"points" gorm:"not null;default:0"`
	FieldGoalsMade         int `json:"field_goals_made" gorm:"not null;default:0"`
	FieldGoalsAttempted    int `json:"field_goals_attempted" gorm:"not null;default:0"`
	ThreePointersMade      int `json:"three_pointers_made" gorm:"not null;default:0"`
	ThreePointersAttempted int `json:"three_pointers_attempted" gorm:"not null;default:0"`
	FreeThrowsMade         int `json:"free_throws_made" gorm:"not null;default:0"`
	FreeThrowsAttempted    int `json:"free_throws_attempted" gorm:"not null;default:0"`
	OffensiveRebounds      int `json:"offensive_rebounds" gorm:"not null;default:0"`
	DefensiveRebounds      int `json:"defensive_rebounds" gorm:"not null;default:0"`
	Assists                int `json:"assists" gorm:"not null;default:0"`
	Steals                 int `json:"steals" gorm:"not null;default:0"`
	Blocks                 int `json:"blocks" gorm:"not null;default:0"`
	Turnovers              int `json:"turnovers" gorm:"not null;default:0"`
	PersonalFouls          int `json:"personal_fouls" gorm:"not null;default:0"`
}

// Performance is one player's box score in one game.
type Performance struct {
	BaseModel
	PlayerID    uint   `json:"player_id" gorm:"not null;uniqueIndex:idx_performance_player_game"`
	Player      Player `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	GameID      uint   `json:"game_id" gorm:"not null;uniqueIndex:idx_performance_player_game;index"`
	Game        Game   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	BoxScore    `gorm:"embedded"`
	Notes       string `json:"notes,omitempty"`
	CreatedByID *uint  `json:"created_by_id"`
	CreatedBy   *User  `json:"-" gorm:"constraint:OnDelete:SET NULL;"`
}

// TeamPerformance is one team's box score in one game.
type TeamPerformance struct {
	BaseModel
	TeamID      uint   `json:"team_id" gorm:"not null;uniqueIndex:idx_team_performance_team_game"`
	Team        Team   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	GameID      uint   `json:"game_id" gorm:"not null;uniqueIndex:idx_team_performance_team_game;index"`
	Game        Game   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	BoxScore    `gorm:"embedded"`
	Notes       string `json:"notes,omitempty"`
	CreatedByID *uint  `json:"created_by_id"`
	CreatedBy   *User  `json:"-" gorm:"constraint:OnDelete:SET NULL;"`
}
