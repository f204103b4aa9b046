package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/linkup-social/linkup/pkg/internal"
	"github.com/linkup-social/linkup/pkg/internal/cache"
	"github.com/linkup-social/linkup/pkg/internal/gateway"
	"github.com/linkup-social/linkup/pkg/internal/pages"
	"github.com/linkup-social/linkup/pkg/internal/services"
	"github.com/linkup-social/linkup/pkg/internal/session"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.CyanString(" _     _       _    _   _\n| |   (_)_ __ | | _| | | |_ __\n| |   | | '_ \\| |/ / | | | '_ \\\n| |___| | | | |   <| |_| | |_) |\n|_____|_|_| |_|_|\\_\\\\___/| .__/\n                         |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiCyan).Add(color.Bold).Sprintf("LinkUp"), pkg.AppVersion)
	fmt.Printf("The social network in your terminal\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("session.file", "session.json")
	viper.SetDefault("jobs.identity_refresh", "@every 5m")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up the cache.")
	}

	// Session
	sess, err := session.Open(viper.GetString("session.file"))
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when opening the session file.")
	}
	if sess.LoggedIn() {
		log.Info().Str("user", sess.UserID()).Msg("Session restored.")
	} else {
		log.Info().Msg("No usable session, log in to get started.")
	}

	client := gateway.NewClient(sess)

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc(viper.GetString("jobs.identity_refresh"), func() {
		if !sess.LoggedIn() {
			return
		}
		if err := services.WarmViewerIdentity(context.Background(), client); err != nil {
			log.Debug().Err(err).Msg("Identity refresh failed, will retry next tick.")
		}
	})
	quartz.Start()

	// Shell
	shell := &pages.Pages{
		API:     client,
		Session: sess,
		In:      pages.NewTerminalPrompter(),
		Out:     os.Stdout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		shell.Run(context.Background())
		quit <- syscall.SIGTERM
	}()

	<-quit

	quartz.Stop()
}
