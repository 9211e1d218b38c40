// Package job runs background work on Asynq.
//
// Tasks are enqueued through JobService.Client and processed by the
// worker server started with Start. Redis backs both.
package job

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger
	emails welcomeSender
}

// NewJobService creates a JobService on the Redis instance from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   &asynqLogger{log: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start starts the worker server. It does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for running tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger sends Asynq's internal logs through zerolog.
type asynqLogger struct {
	log *zerolog.Logger
}

func (l *asynqLogger) Debug(args ...any) { l.log.Debug().Str("component", "asynq").Msg(sprint(args)) }
func (l *asynqLogger) Info(args ...any)  { l.log.Info().Str("component", "asynq").Msg(sprint(args)) }
func (l *asynqLogger) Warn(args ...any)  { l.log.Warn().Str("component", "asynq").Msg(sprint(args)) }
func (l *asynqLogger) Error(args ...any) { l.log.Error().Str("component", "asynq").Msg(sprint(args)) }
func (l *asynqLogger) Fatal(args ...any) { l.log.Fatal().Str("component", "asynq").Msg(sprint(args)) }

func sprint(args []any) string {
	return fmt.Sprint(args...)
}
