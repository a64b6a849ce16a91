package infrastructure

import (
	"log"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/aldana/webmetrics/internal/model"
)

// Connect opens (creating it if needed) the visits database at path and
// runs the schema migrations. In-memory paths are passed through untouched
// so tests can run against "file::memory:".
func Connect(path string) *gorm.DB {
	if !strings.HasPrefix(path, "file::memory:") {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if _, err = os.Create(path); err != nil {
				log.Fatal(err)
			}
			log.Printf("Created database at %s\n", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.Visit{}); err != nil {
		log.Fatal(err)
	}
	return db
}
