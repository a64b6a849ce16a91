package main

import (
	"log"
	"strings"

	"github.com/rjeczalik/notify"

	"github.com/aldana/webmetrics/internal/importer"
)

func fileWatcher(imp *importer.Importer, logPath string) {
	log.Printf("Starting file watcher on %s\n", logPath)
	c := make(chan notify.EventInfo, 1)
	if err := notify.Watch(logPath, c, notify.InCloseWrite, notify.InMovedTo); err != nil {
		log.Fatal(err)
	}

	defer notify.Stop(c)

	for ei := range c {
		if !strings.HasSuffix(ei.Path(), ".log") {
			continue
		}
		imported, err := imp.ImportFile(ei.Path())
		if err != nil {
			log.Printf("Error importing %s: %s\n", ei.Path(), err)
			continue
		}
		log.Printf("Imported %d visits from %s\n", imported, ei.Path())
	}
}
