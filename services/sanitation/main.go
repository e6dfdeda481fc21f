package sanitation

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/services/requests"
)

type (
	SanitationService struct {
		Initialized    bool
		Config         *models.Config
		RequestService *requests.RequestService
		Scheduler      *gocron.Scheduler
	}
)

func NewSanitationService(rs *requests.RequestService, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized:    false,
		Config:         cfg,
		RequestService: rs,
		Scheduler:      gocron.NewScheduler(time.UTC),
	}

	return ss
}

func (ss *SanitationService) Init() error {
	// initialization if necessary
	if ss.Initialized {
		return nil
	}

	// - periodically drop finished phasing requests older than the retention
	//   period so the request history does not grow without bound
	interval := ss.Config.Api.RequestRetention / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	if _, err := ss.Scheduler.Every(interval).Do(func() {
		ss.Sanitize(time.Now())
	}); err != nil {
		return err
	}
	ss.Scheduler.StartAsync()

	ss.Initialized = true
	fmt.Println("Sanitation Service Initialized ..")
	return nil
}

// Sanitize runs a single purge pass relative to now
func (ss *SanitationService) Sanitize(now time.Time) int {
	purged := ss.RequestService.PurgeFinishedBefore(now.Add(-ss.Config.Api.RequestRetention))
	if purged > 0 {
		fmt.Printf("[%s] - Purged %d finished phasing requests..\n", now, purged)
	}
	return purged
}

func (ss *SanitationService) Stop() {
	if ss.Initialized {
		ss.Scheduler.Stop()
		ss.Initialized = false
	}
}
