package app

import "time"

// SettingsPatch updates only the fields that are set.
type SettingsPatch struct {
	BaselineMinutes    *int
	ReferenceDate      *time.Time
	ClearReferenceDate bool
	HomeOfficeActive   *bool
}

func (p SettingsPatch) IsEmpty() bool {
	return p.BaselineMinutes == nil && p.ReferenceDate == nil && !p.ClearReferenceDate && p.HomeOfficeActive == nil
}
