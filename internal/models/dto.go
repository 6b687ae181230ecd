package models

// CreateCalendarRequest is the body for creating an owned calendar.
type CreateCalendarRequest struct {
	Name string `json:"name"`
}

// RenameCalendarRequest is the body for renaming a calendar.
type RenameCalendarRequest struct {
	Name string `json:"name"`
}

// InviteRequest is the body for inviting a user to a calendar.
type InviteRequest struct {
	Email      string `json:"email"`
	Permission string `json:"permission"`
}

// ShareLinkResponse carries the deterministic share link for a calendar.
type ShareLinkResponse struct {
	Link string `json:"link"`
}

// SelectCalendarRequest selects the active calendar.
type SelectCalendarRequest struct {
	CalendarID string `json:"calendarId"`
}

// SelectMonthRequest navigates the viewed month.
type SelectMonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// SelectDateRequest selects the active date.
type SelectDateRequest struct {
	Date string `json:"date"`
}

// SelectPhotoRequest selects a photo from the active date's list.
type SelectPhotoRequest struct {
	PhotoID string `json:"photoId"`
}

// SaveNoteRequest commits the note draft to the selected photo.
type SaveNoteRequest struct {
	Note string `json:"note"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
