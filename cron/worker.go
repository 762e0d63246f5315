package cron

import (
	"context"
	"log"
	"time"

	"campushub/config"
	"campushub/services/reminder"
	"campushub/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker starts the asynq server that executes the scheduled
// dispatch and cleanup tasks in the background.
func InitReminderWorker(svc *reminder.DefaultReminderService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// Cycles scan the full stores; one at a time is enough and
			// keeps overlap down.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDispatchReminders, handleDispatchTask(svc))
	mux.HandleFunc(tasks.TypeCleanupReminders, handleCleanupTask(svc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// InitReminderScheduler registers the recurring jobs: reminder matching
// every minute and cleanup daily, both in the deployment timezone. There is
// no caller-facing result; both jobs are side-effect only.
func InitReminderScheduler() {
	loc, err := time.LoadLocation(config.AppConfig.SchedulerTimezone)
	if err != nil {
		log.Fatalf("[ReminderScheduler] invalid timezone %q: %v", config.AppConfig.SchedulerTimezone, err)
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		},
		&asynq.SchedulerOpts{Location: loc},
	)

	if _, err := scheduler.Register(config.AppConfig.DispatchCron, tasks.NewDispatchTask()); err != nil {
		log.Fatalf("[ReminderScheduler] failed to register dispatch job: %v", err)
	}
	if _, err := scheduler.Register(config.AppConfig.CleanupCron, tasks.NewCleanupTask()); err != nil {
		log.Fatalf("[ReminderScheduler] failed to register cleanup job: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReminderScheduler] scheduler stopped: %v", err)
		}
	}()
}

func handleDispatchTask(svc *reminder.DefaultReminderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		// A store-read failure aborts the cycle; the next minute retries.
		_, err := svc.DispatchDueReminders(ctx)
		return err
	}
}

func handleCleanupTask(svc *reminder.DefaultReminderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		_, err := svc.CleanupStaleReminders(ctx)
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
