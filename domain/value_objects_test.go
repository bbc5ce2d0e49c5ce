package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssc-labs/exam-session-go/domain"
)

func Test_ParseCourseCode_ValidInputs(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "PSSC", want: "PSSC"},
		{input: "BD", want: "BD"},
		{input: "POO2", want: "POO2"},
		{input: "MATH1", want: "MATH1"},
		{input: "  pssc  ", want: "PSSC"},
		{input: "bd", want: "BD"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			code, err := domain.ParseCourseCode(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func Test_ParseCourseCode_InvalidInputs(t *testing.T) {
	tests := []string{"", "   ", "A", "ABCDE", "PSSC12", "PS-SC", "1234", "P2SC"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseCourseCode(input)
			require.Error(t, err)

			var invalidErr *domain.InvalidCourseCodeError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func Test_ParseRoomNumber_Validation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "A301", wantErr: false},
		{input: "B205", wantErr: false},
		{input: "C110", wantErr: false},
		{input: "D499", wantErr: false},
		{input: "a301", wantErr: false}, // normalized to uppercase
		{input: "Z301", wantErr: true},  // invalid building
		{input: "A801", wantErr: true},  // invalid floor
		{input: "A5", wantErr: true},    // too short
		{input: "A300", wantErr: true},  // room 00 not allowed
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			room, err := domain.ParseRoomNumber(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.False(t, room.IsZero())
		})
	}
}

func Test_ParseStudentRegistrationNumber_Validation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "LM12345", wantErr: false},
		{input: "LM00001", wantErr: false},
		{input: "LM99999", wantErr: false},
		{input: "lm12345", wantErr: false}, // normalized to uppercase
		{input: "LM123", wantErr: true},    // too short
		{input: "LM123456", wantErr: true}, // too long
		{input: "AB12345", wantErr: true},  // wrong prefix
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := domain.ParseStudentRegistrationNumber(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func Test_NewExamDate_Rules(t *testing.T) {
	today := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       time.Time
		wantErr    string
		wantString string
	}{
		{
			name:       "monday_in_summer_session",
			date:       time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC),
			wantString: "2026-06-15",
		},
		{
			name:       "last_day_of_summer_session",
			date:       time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
			wantString: "2026-07-15",
		},
		{
			name:    "past_date_rejected",
			date:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
			wantErr: "Exam date must be a future date",
		},
		{
			name:    "today_rejected",
			date:    time.Date(2026, time.March, 1, 23, 0, 0, 0, time.UTC),
			wantErr: "Exam date must be a future date",
		},
		{
			name:    "outside_sessions_rejected",
			date:    time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
			wantErr: "Exam date must be within exam sessions: June 1 - July 15 OR January 15 - February 28",
		},
		{
			name:    "day_after_summer_session_rejected",
			date:    time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC),
			wantErr: "Exam date must be within exam sessions: June 1 - July 15 OR January 15 - February 28",
		},
		{
			name:    "saturday_rejected",
			date:    time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC),
			wantErr: "Exam date cannot be on a weekend (Saturday or Sunday)",
		},
		{
			name:    "sunday_rejected",
			date:    time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC),
			wantErr: "Exam date cannot be on a weekend (Saturday or Sunday)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := domain.NewExamDate(tc.date, today)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantString, date.String())
		})
	}
}

func Test_NewExamDate_WinterSessionBounds(t *testing.T) {
	today := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	// Jan 15 2026 is a Thursday, Feb 27 2026 a Friday.
	first, err := domain.NewExamDate(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), today)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", first.String())

	last, err := domain.NewExamDate(time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC), today)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-27", last.String())

	_, err = domain.NewExamDate(time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC), today)
	require.Error(t, err)
}

func Test_ParseExamDate_RejectsMalformedInput(t *testing.T) {
	today := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := domain.ParseExamDate("not-a-date", today)
	require.Error(t, err)
	assert.EqualError(t, err, "Exam date 'not-a-date' is not a valid date")
}

func Test_ParseDuration_Validation(t *testing.T) {
	tests := []struct {
		input       string
		wantErr     bool
		wantMinutes int
	}{
		{input: "120", wantMinutes: 120},
		{input: "02:00", wantMinutes: 120},
		{input: "90", wantMinutes: 90},
		{input: "01:30", wantMinutes: 90},
		{input: "0", wantErr: true},
		{input: "-30", wantErr: true},
		{input: "00:00", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, err := domain.ParseDuration(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantMinutes, d.Minutes())
		})
	}
}

func Test_ParseCapacity_Validation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		want    int
	}{
		{input: "20", want: 20},
		{input: "1", want: 1},
		{input: "100", want: 100},
		{input: "0", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			c, err := domain.ParseCapacity(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Value())
		})
	}
}

func Test_ParseGrade_Validation(t *testing.T) {
	tests := []struct {
		input       string
		wantErr     bool
		wantString  string
		wantPassing bool
	}{
		{input: "5.00", wantString: "5.00", wantPassing: true},
		{input: "10.00", wantString: "10.00", wantPassing: true},
		{input: "7.50", wantString: "7.50", wantPassing: true},
		{input: "8", wantString: "8.00", wantPassing: true},
		{input: "4.99", wantString: "4.99", wantPassing: false},
		{input: "1.00", wantString: "1.00", wantPassing: false},
		{input: "7.507", wantString: "7.51", wantPassing: true}, // rounded to 2 decimals
		{input: "0", wantErr: true},
		{input: "11", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			g, err := domain.ParseGrade(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantString, g.String())
			assert.Equal(t, tc.wantPassing, g.IsPassing())
		})
	}
}

func Test_MustConstructors_PanicOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { domain.MustCourseCode("not a code") })
	assert.Panics(t, func() { domain.MustRoomNumber("Z999") })
	assert.Panics(t, func() { domain.MustStudentRegistrationNumber("AB1") })
	assert.Panics(t, func() { domain.MustCapacity(0) })
	assert.Panics(t, func() { domain.MustGrade(0.5) })
	assert.Panics(t, func() { domain.MustDuration("-1") })

	assert.NotPanics(t, func() { domain.MustCourseCode("PSSC") })
	assert.NotPanics(t, func() { domain.MustCapacity(30) })
}
