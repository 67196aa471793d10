package jobs

import (
	"context"
	"log/slog"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationReplayJob periodically drains the local fallback cache into
// the durable notification store. Entries that fail to persist go back into
// the cache for the next run, so the cache never shadows the store once it
// is reachable again.
type NotificationReplayJob struct {
	uowFactory commands.NotificationUoWFactory
	cache      ports.NotificationCache
	cron       *cron.Cron
	schedule   string
	logger     *slog.Logger
}

// NewNotificationReplayJob creates a job replaying fallback-cached
// notifications on the given cron schedule.
func NewNotificationReplayJob(
	uowFactory commands.NotificationUoWFactory,
	cache ports.NotificationCache,
	schedule string,
	logger *slog.Logger,
) *NotificationReplayJob {
	return &NotificationReplayJob{
		uowFactory: uowFactory,
		cache:      cache,
		cron:       cron.New(cron.WithSeconds()),
		schedule:   schedule,
		logger:     logger.With("component", "notification_replay_job"),
	}
}

// Start begins the scheduled replay.
func (j *NotificationReplayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Replay(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification replay job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the scheduled replay.
func (j *NotificationReplayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification replay job stopped")
}

// Replay drains the cache and re-applies every entry to the durable store in
// creation order. Entries the store still rejects are appended back to the
// cache and retried on the next run.
func (j *NotificationReplayJob) Replay(ctx context.Context) {
	drained := j.cache.Drain()
	if len(drained) == 0 {
		return
	}

	replayed := 0
	for _, aggregate := range drained {
		if err := j.persist(ctx, aggregate); err != nil {
			j.cache.Append(aggregate)
			j.logger.WarnContext(ctx, "Notification replay failed, entry re-cached",
				"notificationId", aggregate.ID().String(),
				"error", err)
			continue
		}
		replayed++
	}

	if replayed > 0 {
		j.logger.InfoContext(ctx, "Replayed cached notifications",
			"count", replayed,
			"remaining", len(drained)-replayed)
	}
}

func (j *NotificationReplayJob) persist(ctx context.Context, aggregate *notification.Notification) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
