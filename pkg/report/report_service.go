package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"emenu/domain"
	"emenu/entities"
	"emenu/internal/utils"
	"emenu/internal/utils/mailing"
)

type (
	// ReportService summarizes yesterday's dish activity and mails one digest
	// per active user. Re-running the job within the same day re-sends; the
	// trigger is assumed to fire once daily.
	ReportService interface {
		SendDailyReport(ctx context.Context, now time.Time) (domain.ReportResult, error)
	}

	reportService struct {
		reportRepository ReportRepository
		mailer           mailing.Mailer
	}
)

func NewReportService(reportRepository ReportRepository, mailer mailing.Mailer) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		mailer:           mailer,
	}
}

func (s *reportService) SendDailyReport(ctx context.Context, now time.Time) (domain.ReportResult, error) {
	start, end := ReportWindow(now)

	newDishes, modifiedDishes, err := s.reportRepository.DishActivity(ctx, start, end)
	if err != nil {
		return domain.ReportResult{}, err
	}

	if len(newDishes) == 0 && len(modifiedDishes) == 0 {
		return domain.ReportResult{Outcome: domain.ReportOutcomeNoUpdates}, nil
	}

	recipients, err := s.reportRepository.ActiveUserEmails(ctx)
	if err != nil {
		return domain.ReportResult{}, err
	}
	if len(recipients) == 0 {
		return domain.ReportResult{Outcome: domain.ReportOutcomeNoActiveUsers}, nil
	}

	subject, body := ComposeDigest(start, newDishes, modifiedDishes)
	from := utils.GetConfig("REPORT_FROM_EMAIL")

	messages := make([]mailing.Message, 0, len(recipients))
	for _, to := range recipients {
		messages = append(messages, mailing.Message{
			Subject: subject,
			Body:    body,
			From:    from,
			To:      to,
		})
	}

	sent, err := s.mailer.SendBatch(messages)
	if err != nil {
		return domain.ReportResult{}, fmt.Errorf("%w: %v", domain.ErrReportDispatchFailed, err)
	}

	return domain.ReportResult{Outcome: domain.ReportOutcomeSent, SentCount: sent}, nil
}

// ReportWindow returns the previous calendar day as a closed interval,
// midnight to one microsecond before the next midnight, in now's location.
func ReportWindow(now time.Time) (time.Time, time.Time) {
	yesterday := now.AddDate(0, 0, -1)
	start := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	end := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 23, 59, 59, 999999*int(time.Microsecond/time.Nanosecond), yesterday.Location())
	return start, end
}

// ComposeDigest builds the digest subject and body. New dishes come first and
// name their menu; modified dishes follow without it. Empty sections are left
// out entirely.
func ComposeDigest(day time.Time, newDishes, modifiedDishes []entities.Dish) (string, string) {
	subject := fmt.Sprintf("eMenu Daily Report - %s", day.Format("2006-01-02"))

	lines := []string{"Here is the summary of menu updates from yesterday:\n"}

	if len(newDishes) > 0 {
		lines = append(lines, "NEW DISHES:")
		for _, dish := range newDishes {
			menuName := ""
			if dish.Menu != nil {
				menuName = dish.Menu.Name
			}
			lines = append(lines, fmt.Sprintf("- %s ($%s) in %s", dish.Name, dish.Price.StringFixed(2), menuName))
		}
		lines = append(lines, "")
	}

	if len(modifiedDishes) > 0 {
		lines = append(lines, "MODIFIED DISHES:")
		for _, dish := range modifiedDishes {
			lines = append(lines, fmt.Sprintf("- %s ($%s)", dish.Name, dish.Price.StringFixed(2)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "\nCheck them out in the app!")

	return subject, strings.Join(lines, "\n")
}
