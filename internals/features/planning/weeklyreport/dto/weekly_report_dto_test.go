// file: internals/features/planning/weeklyreport/dto/weekly_report_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODateTime(t *testing.T) {
	got, err := ParseISODateTime("2024-01-20T08:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 20, 8, 30, 0, 0, time.UTC), got)

	got, err = ParseISODateTime(" 2024-01-20 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseISODateTime("20/01/2024")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestParseTimeOfDay(t *testing.T) {
	d, err := ParseTimeOfDay("08:30:15")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute+15*time.Second, d)

	d, err = ParseTimeOfDay("23:45")
	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour+45*time.Minute, d)

	_, err = ParseTimeOfDay("8 am")
	require.Error(t, err)
}

func TestDisabledDays(t *testing.T) {
	req := SaveWeeklyReportRequest{Days: []DayRequest{
		{Day: "شنبه", Disabled: true},
		{Day: "یکشنبه"},
		{Day: "جمعه", Disabled: true},
	}}
	assert.Equal(t, "شنبه,جمعه", req.DisabledDays())

	assert.Equal(t, "", (&SaveWeeklyReportRequest{}).DisabledDays())
}

func TestSaveRequestValidation_DayNames(t *testing.T) {
	v := validator.New()
	req := SaveWeeklyReportRequest{
		StudentID: uuid.New(),
		WeekStart: "2024-01-20",
		WeekEnd:   "2024-01-26",
		Days: []DayRequest{{Day: "شنبه", Tasks: []TaskRequest{
			{BoxType: "مطالعه", Start: "08:00", End: "09:00"},
		}}},
	}
	require.NoError(t, req.Validate(v))

	req.Days[0].Day = "monday"
	assert.Error(t, req.Validate(v))
}
