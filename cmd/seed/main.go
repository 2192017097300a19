package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dishseed/config"
	"dishseed/dump"
	"dishseed/logger"
	"dishseed/metrics"
	"dishseed/report"
	"dishseed/seeder"
	"dishseed/sink"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.ParseConfig(config.DefaultPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}
	seedLogger := log.New()
	if err = logger.SetupLogging(conf, seedLogger); err != nil {
		log.Fatal(err)
	}

	s, err := sink.New(conf)
	if err != nil {
		seedLogger.Fatalln(err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			seedLogger.Errorln(err)
		}
	}()

	opts := []seeder.Option{}
	if conf.Dumps.DumpFile != "" {
		d := dump.NewFileDumper(conf.Dumps.DumpFile, int64(conf.Dumps.MaxDumpSize))
		opts = append(opts, seeder.WithDump(dump.NewBuffer(d, conf.Dumps.MaxBufSize, seedLogger)))
	}
	if conf.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, seeder.WithMetrics(metrics.New(reg)))
		go func() {
			srv := &http.Server{Addr: conf.Metrics.Addr, Handler: metrics.Handler(reg)}
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				seedLogger.Errorf("metrics server: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := seeder.New(conf, s, seedLogger, opts...).Run(ctx)
	report.Print(os.Stdout, summary)
	if conf.Report.ExcelFile != "" {
		if xerr := report.WriteExcel(conf.Report.ExcelFile, summary); xerr != nil {
			seedLogger.Errorf("cant write excel report: %v", xerr)
		}
	}
	if err != nil {
		seedLogger.Warnln(err)
	}
}
