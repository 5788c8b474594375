package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"eventra/config"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/notification"
	"eventra/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker starts the background worker that drains the reminder
// queue and delivers each reminder as an in-app notification, with push on
// top when enabled. Runs until process exit; asynq retries failed tasks.
func InitReminderWorker(notifSvc notification.NotificationService, users userRepo.UserRepository, push *notification.PushSender, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc, users, push, logger))

	go func() {
		logger.Info("starting reminder worker", zap.String("redisAddr", redisOpts.Addr))
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, users userRepo.UserRepository, push *notification.PushSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
		}

		if _, err := notifSvc.CreateNotification(ctx, p.RecipientID, models.NotificationBookingReminder, p.Subject, p.Body, p.BookingReference); err != nil {
			return fmt.Errorf("failed to deliver reminder for booking %s: %w", p.BookingReference, err)
		}

		if push != nil {
			recipient, err := users.GetByID(ctx, p.RecipientID)
			if err != nil {
				// The in-app notification already landed; push is best-effort.
				logger.Warn("reminder push skipped, recipient not resolvable",
					zap.String("recipientId", p.RecipientID),
					zap.Error(err),
				)
				return nil
			}
			if perr := push.Send(ctx, *recipient, p.Subject, p.Body, map[string]string{
				"type":             string(models.NotificationBookingReminder),
				"bookingReference": p.BookingReference,
			}); perr != nil {
				logger.Warn("reminder push delivery failed",
					zap.String("recipientId", p.RecipientID),
					zap.Error(perr),
				)
			}
		}

		logger.Info("booking reminder delivered",
			zap.String("bookingReference", p.BookingReference),
			zap.String("recipientId", p.RecipientID),
		)
		return nil
	}
}
