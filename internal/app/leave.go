package app

import "time"

type AddLeaveRequest struct {
	From time.Time
	To   time.Time
}

type ImportResult struct {
	PunchCount     int
	LeaveCount     int
	SettingsFound  bool
	SkippedPunches int
}
