package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"toxicity-coach/internal"
	"toxicity-coach/moderation"
	"toxicity-coach/policy"
	"toxicity-coach/runtime"
	"toxicity-coach/services"
	"toxicity-coach/sink"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Review a JSON lines chat stream read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			lex, scorer, err := a.loadScorer()
			if err != nil {
				return err
			}
			censor, err := internal.CharacterRune(a.config.CensorCharacter)
			if err != nil {
				return err
			}
			moderator, err := moderation.NewModerator(lex.Terms(), censor)
			if err != nil {
				return err
			}
			limiter, err := services.NewRateLimiter(a.log, a.config.RateLimitWindow, int64(a.config.RateLimitCapacity))
			if err != nil {
				return err
			}
			defer limiter.Close()

			coach := services.NewCoachService(a.log, scorer, policy.NewEvaluator(a.policies), moderator, limiter, a.scores)
			pipeline := runtime.NewPipeline(a.log, runtime.PipelineConfig{
				BufferSize:        a.config.BufferSize,
				RestartInterval:   a.config.RestartInterval,
				RetentionPeriod:   a.config.RetentionPeriod(),
				RetentionInterval: a.config.RetentionInterval,
				HealthInterval:    a.config.HealthInterval,
			}, os.Stdin, coach, a.scores, sink.NewHeadsUpSink(cmd.OutOrStdout()))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("Coach listening on stdin")
			pipeline.Run(ctx)
			s := pipeline.Stats.Snapshot()
			a.log.Info("Program stopped cleanly", "scored", s.Scored, "flagged", s.Flagged)
			return nil
		},
	}
}
