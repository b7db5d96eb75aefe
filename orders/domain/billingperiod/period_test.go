package billingperiod

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugiahuy/order-billing/orders/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func snapshot(name string, expiresAt *time.Time, days int32) Snapshot {
	return Snapshot{
		OrderProductID: 7,
		ExpiresAt:      expiresAt,
		Order:          &model.Order{ID: 3, Currency: "USD"},
		Plan:           &model.Plan{ID: 11, Name: "Monthly", BillingDuration: days},
		Product:        &model.Product{ID: 5, Name: name},
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot Snapshot
		expected string
	}{
		{
			name:     "scenario_pro_hosting",
			snapshot: snapshot("Pro Hosting", date(2024, time.March, 1), 31),
			expected: "Pro Hosting (Mar 01, 2024 - Apr 01, 2024)",
		},
		{
			name:     "month_rollover",
			snapshot: snapshot("VPS", date(2024, time.January, 20), 30),
			expected: "VPS (Jan 20, 2024 - Feb 19, 2024)",
		},
		{
			name:     "year_rollover",
			snapshot: snapshot("VPS", date(2023, time.December, 15), 30),
			expected: "VPS (Dec 15, 2023 - Jan 14, 2024)",
		},
		{
			name:     "leap_day",
			snapshot: snapshot("Backup", date(2024, time.February, 28), 1),
			expected: "Backup (Feb 28, 2024 - Feb 29, 2024)",
		},
		{
			name:     "zero_duration",
			snapshot: snapshot("One-off", date(2024, time.June, 9), 0),
			expected: "One-off (Jun 09, 2024 - Jun 09, 2024)",
		},
		{
			name:     "yearly_plan",
			snapshot: snapshot("Domain", date(2024, time.March, 1), 365),
			expected: "Domain (Mar 01, 2024 - Mar 01, 2025)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Describe(tc.snapshot)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDescribe_KeepsCalendarDateOfExpiry(t *testing.T) {
	lateEvening := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	earlyMorning := time.Date(2024, time.March, 1, 0, 30, 0, 0, time.FixedZone("UTC+14", 14*60*60))

	for _, expiresAt := range []time.Time{lateEvening, earlyMorning} {
		s := snapshot("Pro Hosting", &expiresAt, 31)

		result, err := Describe(s)

		require.NoError(t, err)
		assert.Equal(t, "Pro Hosting (Mar 01, 2024 - Apr 01, 2024)", result)
	}
}

func TestDescribe_DoesNotMutateInput(t *testing.T) {
	expiresAt := date(2024, time.January, 20)
	original := *expiresAt
	s := snapshot("VPS", expiresAt, 30)

	first, err := Describe(s)
	require.NoError(t, err)
	second, err := Describe(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, original.Equal(*s.ExpiresAt))
	assert.True(t, original.Equal(*expiresAt))
}

func TestDescribe_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^Pro Hosting \([A-Z][a-z]{2} \d{2}, \d{4} - [A-Z][a-z]{2} \d{2}, \d{4}\)$`)
	start := date(2023, time.November, 17)

	for days := int32(0); days <= 400; days += 7 {
		result, err := Describe(snapshot("Pro Hosting", start, days))

		require.NoError(t, err)
		assert.Regexp(t, pattern, result)
	}
}

func TestNext(t *testing.T) {
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	for days := 0; days <= 800; days += 13 {
		period := Next(start, days)

		assert.True(t, period.Start.Equal(start))
		assert.Equal(t, days, int(period.End.Sub(period.Start).Hours()/24))
		assert.Equal(t, 0, period.End.Hour())
	}
}

func TestNextPeriod_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot Snapshot
		check    func(t *testing.T, err error)
	}{
		{
			name:     "missing_expiration_date",
			snapshot: snapshot("VPS", nil, 30),
			check: func(t *testing.T, err error) {
				var target *MissingDateError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, int32(7), target.OrderProductID)
			},
		},
		{
			name: "missing_plan",
			snapshot: Snapshot{
				OrderProductID: 7,
				ExpiresAt:      date(2024, time.January, 20),
				Product:        &model.Product{Name: "VPS"},
			},
			check: func(t *testing.T, err error) {
				var target *MissingPlanError
				require.ErrorAs(t, err, &target)
			},
		},
		{
			name:     "negative_duration",
			snapshot: snapshot("VPS", date(2024, time.January, 20), -1),
			check: func(t *testing.T, err error) {
				var target *InvalidDurationError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, int32(-1), target.Days)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NextPeriod(tc.snapshot)
			tc.check(t, err)
			assert.True(t, IsDataIntegrity(err))

			_, err = Describe(tc.snapshot)
			tc.check(t, err)
		})
	}
}

func TestDescribe_MissingProduct(t *testing.T) {
	s := snapshot("", date(2024, time.January, 20), 30)

	_, err := Describe(s)
	var target *MissingProductError
	require.ErrorAs(t, err, &target)

	s.Product = nil
	_, err = Describe(s)
	require.ErrorAs(t, err, &target)
}

func TestCurrency(t *testing.T) {
	s := snapshot("VPS", date(2024, time.January, 20), 30)

	currency, err := Currency(s)
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)

	s.Order = nil
	_, err = Currency(s)
	var target *MissingOrderError
	require.ErrorAs(t, err, &target)
	assert.Contains(t, err.Error(), "order product 7 has no order")
}

func TestNewSnapshot_CopiesExpiry(t *testing.T) {
	op := &model.OrderProduct{ID: 9, ExpiresAt: date(2024, time.May, 5)}

	s := NewSnapshot(op)
	*op.ExpiresAt = op.ExpiresAt.AddDate(0, 1, 0)

	assert.Equal(t, int32(9), s.OrderProductID)
	assert.Equal(t, time.May, s.ExpiresAt.Month())
	assert.Nil(t, NewSnapshot(&model.OrderProduct{}).ExpiresAt)
}

func TestIsDataIntegrity(t *testing.T) {
	assert.False(t, IsDataIntegrity(nil))
	assert.False(t, IsDataIntegrity(assert.AnError))
	assert.True(t, IsDataIntegrity(&MissingOrderError{}))
}
