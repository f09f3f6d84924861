package user

// NotificationSettings holds the per-user reminder preferences.
// Recognized fields and their defaults live here and nowhere else.
type NotificationSettings struct {
	RemindersEnabled bool   `json:"reminders_enabled" db:"reminders_enabled"`
	ReminderTime     string `json:"reminder_time" db:"reminder_time"`
	WeeklySummary    bool   `json:"weekly_summary" db:"weekly_summary"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		RemindersEnabled: true,
		ReminderTime:     "09:00",
		WeeklySummary:    true,
	}
}

type UpdateSettingsRequest struct {
	RemindersEnabled *bool   `json:"reminders_enabled"`
	ReminderTime     *string `json:"reminder_time"`
	WeeklySummary    *bool   `json:"weekly_summary"`
}

// Apply merges a partial settings update, leaving unset fields alone.
func (s NotificationSettings) Apply(req *UpdateSettingsRequest) NotificationSettings {
	if req.RemindersEnabled != nil {
		s.RemindersEnabled = *req.RemindersEnabled
	}
	if req.ReminderTime != nil {
		s.ReminderTime = *req.ReminderTime
	}
	if req.WeeklySummary != nil {
		s.WeeklySummary = *req.WeeklySummary
	}
	return s
}
