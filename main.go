package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/interviewlab/fluency-pipeline/config"
	"github.com/interviewlab/fluency-pipeline/engine"
	"github.com/interviewlab/fluency-pipeline/input"
	"github.com/interviewlab/fluency-pipeline/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fluency-pipeline",
		Short:         "Fluency and confidence scoring for interview sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd())
	return root
}

func newScoreCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLUENCY")
	v.AutomaticEnv()
	v.SetDefault("config", "")
	v.SetDefault("outputs", "")

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a session bundle and write the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, v)
		},
	}
	cmd.Flags().String("input", "", "path to the session input bundle (json)")
	cmd.Flags().String("config", "", "path to the threshold config (yaml)")
	cmd.Flags().String("outputs", "", "directory for session reports")
	_ = cmd.MarkFlagRequired("input")
	_ = v.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = v.BindPFlag("outputs", cmd.Flags().Lookup("outputs"))
	return cmd
}

func runScore(cmd *cobra.Command, v *viper.Viper) error {
	conf, err := cfg.Load(v.GetString("config"))
	if err != nil {
		return err
	}
	if out := v.GetString("outputs"); out != "" {
		conf.Paths.Outputs = out
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(conf.Pipeline.LogLvl); err == nil {
		log.SetLevel(lvl)
	}

	inPath, _ := cmd.Flags().GetString("input")
	sess, err := input.Load(inPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(conf, log)
	if err != nil {
		return err
	}

	evals := eng.EvaluateSession(context.Background(), sess.Questions)
	report := session.NewAggregator(conf).Fold(sess.Candidate, evals)

	path, err := session.Persist(conf.Paths.Outputs, report)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"candidate": report.Candidate,
		"questions": report.QuestionCount,
		"valid":     report.ValidCount,
		"adjusted":  report.AdjustedScore,
		"band":      report.FluencyBand,
		"report":    path,
	}).Info("session scored")
	return nil
}
