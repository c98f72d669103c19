package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// Mailer is the slice of pkg/email the digest needs.
type Mailer interface {
	Enabled() bool
	Send(to, subject, html string) error
}

// DigestService mails each subscriber the active job postings matching the
// skills they follow. It is invoked on a cron schedule from main.
type DigestService interface {
	Run(ctx context.Context) error
	// MatchJobs returns the active jobs that share at least one skill with
	// the subscriber, case-insensitively.
	MatchJobs(sub *model.Subscriber, jobs []model.Job) []model.Job
}

type digestService struct {
	subscribers repository.SubscriberRepository
	jobs        repository.JobRepository
	mailer      Mailer
}

func NewDigestService(subscribers repository.SubscriberRepository, jobs repository.JobRepository, mailer Mailer) DigestService {
	return &digestService{subscribers: subscribers, jobs: jobs, mailer: mailer}
}

func (s *digestService) Run(ctx context.Context) error {
	if !s.mailer.Enabled() {
		log.Println("digest: mailer not configured, skipping run")
		return nil
	}

	subs, err := s.subscribers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("digest: list subscribers: %w", err)
	}
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("digest: list active jobs: %w", err)
	}

	sent := 0
	for i := range subs {
		matched := s.MatchJobs(&subs[i], jobs)
		if len(matched) == 0 {
			continue
		}
		if err := s.mailer.Send(subs[i].Email, "Việc làm mới phù hợp với bạn", renderDigest(&subs[i], matched)); err != nil {
			log.Printf("digest: send to %s failed: %v", subs[i].Email, err)
			continue
		}
		sent++
	}

	log.Printf("digest: sent %d emails for %d subscribers, %d active jobs", sent, len(subs), len(jobs))
	return nil
}

func (s *digestService) MatchJobs(sub *model.Subscriber, jobs []model.Job) []model.Job {
	wanted := make(map[string]bool, len(sub.Skills))
	for _, skill := range sub.Skills {
		wanted[strings.ToLower(skill)] = true
	}

	var matched []model.Job
	for _, job := range jobs {
		for _, skill := range job.Skills {
			if wanted[strings.ToLower(skill)] {
				matched = append(matched, job)
				break
			}
		}
	}
	return matched
}

func renderDigest(sub *model.Subscriber, jobs []model.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>Chào %s,</h3><p>Các việc làm mới phù hợp với kỹ năng của bạn:</p><ul>", sub.Name)
	for _, job := range jobs {
		company := ""
		if job.Company != nil {
			company = job.Company.Name
		}
		fmt.Fprintf(&b, "<li><b>%s</b> — %s (%s), lương %s</li>", job.Name, company, job.Location, job.Salary.String())
	}
	b.WriteString("</ul>")
	return b.String()
}
