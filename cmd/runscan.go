package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/go-pg/pg/v10"
	lf "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rulescan/db"
	"rulescan/rules"
	"rulescan/scan"
	"rulescan/sink"
	"rulescan/types"
)

// RunScan wires the validated configuration into one scan run.
func RunScan(cmd *cobra.Command, args []string) error {
	logger := lf.New()
	logger.SetFormatter(&lf.TextFormatter{FullTimestamp: true})
	if level, err := lf.ParseLevel(viper.GetString("log_level")); err == nil {
		logger.SetLevel(level)
	}

	target := viper.GetString("service_name")
	workers := viper.GetInt("workers")
	log := logger.WithField("service", target)

	input := viper.GetString("input_file")
	if input == "" {
		return errors.New("no input file provided")
	}

	file, err := rules.Load(input)
	if err != nil {
		log.Error("Could not read rule file ", input, ": ", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		log.Error("Operation cancelled by user")
		cancel()
	}()

	var out sink.Sink
	if path := viper.GetString("output_file"); path != "" {
		f, err := sink.NewFile(path)
		if err != nil {
			log.Error("Could not open output file ", path, ": ", err)
			return err
		}
		out = f
	} else {
		out = sink.NewConsole(log)
	}

	var archive *db.Archive
	if viper.GetBool("archive") {
		archive, err = db.Open(&pg.Options{
			Addr:     viper.GetString("database_host") + ":" + viper.GetString("database_port"),
			Database: viper.GetString("database_dbname"),
			User:     viper.GetString("database_username"),
			Password: viper.GetString("database_password"),
		}, types.Run{
			Service: target,
			Input:   file.Path,
			Digest:  file.Digest,
			Workers: workers,
		})
		if err != nil {
			log.Error("Could not open archive: ", err)
			out.Close()
			return err
		}
		out = sink.Multi{out, archive}
	}

	started := time.Now()
	total, err := scan.Run(ctx, log, file, target, workers, out)
	if err != nil {
		out.Close()
		log.Error("Scan aborted: ", err)
		return err
	}

	if archive != nil {
		if err := archive.RecordRun(total, time.Since(started)); err != nil {
			log.Error("Could not record scan run: ", err)
		}
	}
	if err := out.Close(); err != nil {
		log.Error("Could not close output: ", err)
		return err
	}
	return nil
}
