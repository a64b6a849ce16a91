//go:build !linux

package main

import (
	"github.com/aldana/webmetrics/internal/importer"
)

func fileWatcher(imp *importer.Importer, logPath string) {
}
