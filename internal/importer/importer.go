package importer

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"path"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rickb777/date/v2"
	"github.com/spf13/afero"

	"github.com/aldana/webmetrics/internal/model"
)

// ErrMalformedLine is returned for visit log lines that do not follow the
// expected format.
var ErrMalformedLine = errors.New("malformed visit log line")

type visitsWriter interface {
	Store(visit *model.Visit) error
}

// Importer reads visit log files into the visits store. Each line holds
// the whitespace-separated fields
//
//	<date> <visitor id> <pageviews> <duration seconds> [referrer]
//
// Empty lines and lines starting with # are skipped.
type Importer struct {
	fs         afero.Fs
	repository visitsWriter
}

func New(fs afero.Fs, repository visitsWriter) *Importer {
	return &Importer{
		fs:         fs,
		repository: repository,
	}
}

// ImportDir imports every .log file found under dir, recursively, and
// returns how many visits were stored. Files that fail to import are
// logged and skipped so one bad file does not abort a batch.
func (i *Importer) ImportDir(dir string) (int, error) {
	matches, err := doublestar.Glob(afero.NewIOFS(i.fs), path.Join(dir, "**/*.log"))
	if err != nil {
		return 0, err
	}
	imported := 0
	for _, match := range matches {
		count, err := i.ImportFile(match)
		if err != nil {
			log.Printf("Error importing %s: %s\n", match, err)
			continue
		}
		imported += count
	}
	return imported, nil
}

// ImportFile imports a single visit log file and returns how many visits
// were stored.
func (i *Importer) ImportFile(name string) (int, error) {
	file, err := i.fs.Open(name)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	imported := 0
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		visit, err := parseLine(line)
		if err != nil {
			return imported, fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
		if err := i.repository.Store(visit); err != nil {
			return imported, fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
		imported++
	}
	return imported, scanner.Err()
}

func parseLine(line string) (*model.Visit, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrMalformedLine, len(fields))
	}
	day, err := date.ParseISO(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a date", ErrMalformedLine, fields[0])
	}
	pageviews, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a pageview count", ErrMalformedLine, fields[2])
	}
	duration, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a duration", ErrMalformedLine, fields[3])
	}
	visit := &model.Visit{
		VisitorID: fields[1],
		Date:      day,
		Pageviews: pageviews,
		Duration:  duration,
	}
	if len(fields) > 4 {
		visit.Referrer = fields[4]
	}
	return visit, nil
}
