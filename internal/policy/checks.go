package policy

// IsTeamCoach passes for admins and for the coach named on the team.
func IsTeamCoach(p Principal, t Team) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Role == RoleCoach && t.CoachID != nil && *t.CoachID == p.UserID
}

// IsTeamStatistician passes for admins and for statisticians on the
// team's staff.
func IsTeamStatistician(p Principal, t Team) bool {
	if p.IsAdmin() {
		return true
	}
	if p.Role != RoleStatistician {
		return false
	}
	for _, id := range t.StaffIDs {
		if id == p.UserID {
			return true
		}
	}
	return false
}

// IsTeamMember passes for the team's coach and staff, admins, and players
// assigned to the team.
func IsTeamMember(p Principal, t Team) bool {
	if IsTeamCoach(p, t) || IsTeamStatistician(p, t) {
		return true
	}
	return p.Role == RolePlayer && p.TeamID != nil && *p.TeamID == t.ID
}
