package models

import "time"

// Appointment statuses, mirrored by the appointment_status enum type.
const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

// Wire formats for appointment dates and times.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

// ValidAppointmentStatus reports whether s is one of the appointment_status
// enum values.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// ValidTime reports whether s is an HH:MM:SS time of day.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeFormat, s)
	return err == nil
}

// Appointment matches the appointments table. Client and lawyer references
// are required and cascade-delete the appointment; the case reference is
// optional and cleared when the case is deleted.
type Appointment struct {
	AppointmentID     int64  `json:"appointment_id"`
	ClientID          int64  `json:"client_id"`
	LawyerID          int64  `json:"lawyer_id"`
	CaseID            *int64 `json:"case_id"`
	AppointmentDate   string `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime   string `json:"appointment_time"` // HH:MM:SS
	AppointmentStatus string `json:"appointment_status"`
}
