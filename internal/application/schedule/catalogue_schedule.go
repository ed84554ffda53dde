package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"zipcode-web/internal/domain/gateway/lock"
	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/usecase/zipcode"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
)

const catalogueReportLockKey = "catalogue-report"

// CatalogueReport is the number of rows on file when the report ran
type CatalogueReport struct {
	States int64
	Cities int64
	Zips   int64
}

// CatalogueScheduler periodically logs how many states, cities and ZIP codes are stored.
type CatalogueScheduler struct {
	cron    *cron.Cron
	useCase zipcode.UseCase
	locker  lock.Locker
	timeout time.Duration
}

func NewCatalogueScheduler(useCase zipcode.UseCase, locker lock.Locker, timeout time.Duration) *CatalogueScheduler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CatalogueScheduler{cron: cron.New(), useCase: useCase, locker: locker, timeout: timeout}
}

// InitCatalogueScheduleTasks registers the report on cronExpression and starts the cron
func (s *CatalogueScheduler) InitCatalogueScheduleTasks(cronExpression string) error {
	if _, err := s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}
	s.cron.Start()
	log.Info(msg.GetMessage("report.started", cronExpression))
	return nil
}

func (s *CatalogueScheduler) ExecuteScheduledTask() {
	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.locker.WithLock(ctx, catalogueReportLockKey, func() error {
		report, err := s.Report(ctx)
		if err != nil {
			return err
		}
		log.Info(msg.GetMessage("report.summary", report.States, report.Cities, report.Zips),
			zap.String("request_id", requestID),
			zap.Int64("states", report.States),
			zap.Int64("cities", report.Cities),
			zap.Int64("zips", report.Zips))
		return nil
	})
	if err != nil {
		log.Warn(msg.GetMessage("report.failed", err), zap.String("request_id", requestID))
	}
}

// Report counts the stored rows using single-item pages
func (s *CatalogueScheduler) Report(ctx context.Context) (CatalogueReport, error) {
	probe := model.NewPageRequest(0, 1)

	states, err := s.useCase.FindStates(ctx, probe)
	if err != nil {
		return CatalogueReport{}, err
	}
	cities, err := s.useCase.FindCities(ctx, probe)
	if err != nil {
		return CatalogueReport{}, err
	}
	zips, err := s.useCase.FindZips(ctx, probe)
	if err != nil {
		return CatalogueReport{}, err
	}

	return CatalogueReport{
		States: states.TotalElements,
		Cities: cities.TotalElements,
		Zips:   zips.TotalElements,
	}, nil
}

// Stop waits for a running report to finish
func (s *CatalogueScheduler) Stop() {
	<-s.cron.Stop().Done()
}
