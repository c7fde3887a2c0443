package background

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"crackershop/internal/jobs"
)

// JobScheduler manages the service's background jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	sweeper   *jobs.UploadsSweeper
	registry  map[string]gocron.Job
}

func NewJobScheduler(sweeper *jobs.UploadsSweeper) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		sweeper:   sweeper,
		registry:  make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			if _, err := js.sweeper.Sweep(context.Background()); err != nil {
				log.Printf("uploads sweep failed: %v", err)
			}
		}),
		gocron.WithName("uploads-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create uploads sweep job: %v", err)
	} else {
		js.registry["uploads-sweep"] = sweepJob
	}
}
