package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/aldana/webmetrics/internal/i18n"
	"github.com/aldana/webmetrics/internal/importer"
	"github.com/aldana/webmetrics/internal/infrastructure"
	"github.com/aldana/webmetrics/internal/model"
	"github.com/aldana/webmetrics/internal/webserver"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}
	if _, err := os.Stat(cfg.LogPath); os.IsNotExist(err) {
		log.Fatal(fmt.Errorf("Directory '%s' does not exist, exiting", cfg.LogPath))
	}
	if cfg.DbPath == "" {
		if err = os.MkdirAll(fmt.Sprintf("%s/webmetrics", homeDir), os.ModePerm); err != nil {
			log.Fatal(fmt.Errorf("Couldn't create %s, exiting", fmt.Sprintf("%s/webmetrics", homeDir)))
		}
		cfg.DbPath = fmt.Sprintf("%s/webmetrics/database.db", homeDir)
	}

	run(cfg, appFs)
}

func run(cfg Config, appFs afero.Fs) {
	db := infrastructure.Connect(cfg.DbPath)
	repository := &model.VisitRepository{DB: db}
	imp := importer.New(appFs, repository)

	if !cfg.SkipImport {
		go ingest(imp, cfg.LogPath)
	}

	printers, err := i18n.Printers(webserver.Translations(), "en")
	if err != nil {
		log.Fatal(err)
	}

	webserverConfig := webserver.Config{
		Version:  version,
		Timezone: cfg.Timezone,
	}
	controllers := webserver.SetupControllers(webserverConfig, db, printers)
	app := webserver.New(webserverConfig, printers, controllers)

	fmt.Printf("Webmetrics version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

func ingest(imp *importer.Importer, logPath string) {
	start := time.Now().Unix()
	log.Println(fmt.Sprintf("Importing visit logs at %s, this can take a while depending on the amount of recorded traffic.", logPath))
	imported, err := imp.ImportDir(logPath)
	if err != nil {
		log.Fatal(err)
	}
	end := time.Now().Unix()
	dur, _ := time.ParseDuration(fmt.Sprintf("%ds", end-start))
	log.Println(fmt.Sprintf("Import finished, %d visits stored in %d seconds", imported, int(dur.Seconds())))
	fileWatcher(imp, logPath)
}
