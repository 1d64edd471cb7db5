package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"emenu/domain"
	"emenu/entities"
	"emenu/internal/utils/mailing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepository struct {
	newDishes      []entities.Dish
	modifiedDishes []entities.Dish
	emails         []string

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeReportRepository) DishActivity(_ context.Context, start, end time.Time) ([]entities.Dish, []entities.Dish, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.newDishes, f.modifiedDishes, nil
}

func (f *fakeReportRepository) ActiveUserEmails(_ context.Context) ([]string, error) {
	return f.emails, nil
}

type fakeMailer struct {
	batches [][]mailing.Message
	err     error
}

func (f *fakeMailer) SendBatch(messages []mailing.Message) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.batches = append(f.batches, messages)
	return len(messages), nil
}

func testDish(name, price, menuName string) entities.Dish {
	d := entities.Dish{
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	if menuName != "" {
		d.Menu = &entities.Menu{Name: menuName}
	}
	return d
}

func TestReportWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	start, end := ReportWindow(now)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 14, 23, 59, 59, 999999000, time.UTC), end)
}

func TestReportWindow_MonthBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	start, _ := ReportWindow(now)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), start)
}

func TestComposeDigest_BothSections(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	newDishes := []entities.Dish{testDish("New Dish", "10.00", "Menu")}
	modified := []entities.Dish{testDish("Mod Dish", "20.00", "")}

	subject, body := ComposeDigest(day, newDishes, modified)

	assert.Equal(t, "eMenu Daily Report - 2024-03-14", subject)
	assert.Contains(t, body, "NEW DISHES:")
	assert.Contains(t, body, "- New Dish ($10.00) in Menu")
	assert.Contains(t, body, "MODIFIED DISHES:")
	assert.Contains(t, body, "- Mod Dish ($20.00)")
	assert.Contains(t, body, "Check them out in the app!")

	// New dishes come before modified ones.
	assert.Less(t,
		indexOf(t, body, "NEW DISHES:"),
		indexOf(t, body, "MODIFIED DISHES:"),
	)
}

func TestComposeDigest_OmitsEmptySections(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	_, body := ComposeDigest(day, []entities.Dish{testDish("Only New", "5.00", "Menu")}, nil)
	assert.Contains(t, body, "NEW DISHES:")
	assert.NotContains(t, body, "MODIFIED DISHES:")

	_, body = ComposeDigest(day, nil, []entities.Dish{testDish("Only Mod", "5.00", "")})
	assert.NotContains(t, body, "NEW DISHES:")
	assert.Contains(t, body, "MODIFIED DISHES:")
}

func TestSendDailyReport_NoUpdates(t *testing.T) {
	repo := &fakeReportRepository{emails: []string{"u1@example.com"}}
	mailer := &fakeMailer{}
	service := NewReportService(repo, mailer)

	result, err := service.SendDailyReport(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.ReportOutcomeNoUpdates, result.Outcome)
	assert.Zero(t, result.SentCount)
	assert.Empty(t, mailer.batches, "no send should be attempted")
}

func TestSendDailyReport_NoActiveUsers(t *testing.T) {
	repo := &fakeReportRepository{
		newDishes: []entities.Dish{testDish("New Dish", "10.00", "Menu")},
	}
	mailer := &fakeMailer{}
	service := NewReportService(repo, mailer)

	result, err := service.SendDailyReport(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.ReportOutcomeNoActiveUsers, result.Outcome)
	assert.Empty(t, mailer.batches)
}

func TestSendDailyReport_OneMessagePerRecipient(t *testing.T) {
	repo := &fakeReportRepository{
		newDishes:      []entities.Dish{testDish("New Dish", "10.00", "Menu")},
		modifiedDishes: []entities.Dish{testDish("Mod Dish", "20.00", "")},
		emails:         []string{"u1@example.com", "u2@example.com"},
	}
	mailer := &fakeMailer{}
	service := NewReportService(repo, mailer)

	result, err := service.SendDailyReport(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.ReportOutcomeSent, result.Outcome)
	assert.Equal(t, 2, result.SentCount)

	require.Len(t, mailer.batches, 1)
	batch := mailer.batches[0]
	require.Len(t, batch, 2)
	assert.Equal(t, "u1@example.com", batch[0].To)
	assert.Equal(t, "u2@example.com", batch[1].To)
	assert.Equal(t, batch[0].Subject, batch[1].Subject)
	assert.Equal(t, batch[0].Body, batch[1].Body)
}

func TestSendDailyReport_WindowPassedToRepository(t *testing.T) {
	repo := &fakeReportRepository{}
	service := NewReportService(repo, &fakeMailer{})

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	_, err := service.SendDailyReport(context.Background(), now)

	require.NoError(t, err)
	wantStart, wantEnd := ReportWindow(now)
	assert.Equal(t, wantStart, repo.gotStart)
	assert.Equal(t, wantEnd, repo.gotEnd)
}

func TestSendDailyReport_TransportFailure(t *testing.T) {
	repo := &fakeReportRepository{
		newDishes: []entities.Dish{testDish("New Dish", "10.00", "Menu")},
		emails:    []string{"u1@example.com"},
	}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := NewReportService(repo, mailer)

	_, err := service.SendDailyReport(context.Background(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReportDispatchFailed)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	if i < 0 {
		t.Fatalf("%q not found", sub)
	}
	return i
}
