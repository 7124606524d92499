package domain

import "testing"

func TestVacancyStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status VacancyStatus
		want   bool
	}{
		{VacancyStatusCreated, true},
		{VacancyStatusFilled, true},
		{VacancyStatusCancelled, true},
		{VacancyStatus("OPEN"), false},
		{VacancyStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("VacancyStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestApplicationStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ApplicationStatus
		want   bool
	}{
		{ApplicationStatusSubmitted, true},
		{ApplicationStatusAdjudicated, true},
		{ApplicationStatusRejected, true},
		{ApplicationStatus(3), false},
		{ApplicationStatus(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("ApplicationStatus(%d).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestApplicationStatus_String(t *testing.T) {
	t.Parallel()

	if got := ApplicationStatusSubmitted.String(); got != "SUBMITTED" {
		t.Errorf("got %q, want SUBMITTED", got)
	}
	if got := ApplicationStatusAdjudicated.String(); got != "ADJUDICATED" {
		t.Errorf("got %q, want ADJUDICATED", got)
	}
	if got := ApplicationStatusRejected.String(); got != "REJECTED" {
		t.Errorf("got %q, want REJECTED", got)
	}
	if got := ApplicationStatus(9).String(); got != "UNKNOWN" {
		t.Errorf("got %q, want UNKNOWN", got)
	}
}

func TestUserRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role UserRole
		want bool
	}{
		{UserRoleClient, true},
		{UserRoleCompany, true},
		{UserRoleAdmin, true},
		{UserRole("root"), false},
		{UserRole(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("UserRole(%q).IsValid() = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestVacancy_IsOpen(t *testing.T) {
	t.Parallel()

	v := Vacancy{Status: VacancyStatusCreated}
	if !v.IsOpen() {
		t.Error("CREATED vacancy should be open")
	}

	v.Status = VacancyStatusCancelled
	if v.IsOpen() {
		t.Error("CANCELLED vacancy should not be open")
	}

	v.Status = VacancyStatusFilled
	if v.IsOpen() {
		t.Error("FILLED vacancy should not be open")
	}
}
