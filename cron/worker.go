package cron

import (
	"context"
	"log"
	"time"

	"bookit/config"
	"bookit/services/booking"

	"github.com/hibiken/asynq"
)

// TypeBookingSweep is the task that moves elapsed confirmed bookings to
// completed. Completion is sweep-driven rather than lazy so that review
// eligibility does not depend on someone happening to read the booking.
const TypeBookingSweep = "booking:sweep"

// InitSweepWorker starts the async worker and the periodic enqueuer in the
// background.
func InitSweepWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingSweep, handleSweepTask(bookingSvc))

	go enqueueSweeps(redisOpts)

	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := bookingSvc.CompleteElapsed(ctx)
		if err != nil {
			log.Printf("[SweepHandler] sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[SweepHandler] completed %d elapsed bookings", n)
		}
		return nil
	}
}

// enqueueSweeps submits a sweep task on the configured cadence.
func enqueueSweeps(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.SweepIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		task := asynq.NewTask(TypeBookingSweep, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(1), asynq.Unique(interval)); err != nil {
			log.Printf("[SweepWorker] failed to enqueue sweep: %v", err)
		}
	}
}
