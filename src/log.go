package gridconv

/*------------------------------------------------------------------
 *
 * Purpose:	Save conversions to a log file.
 *
 * Description: Each conversion is written as one CSV line for easy
 *		reading and later processing.
 *
 *		There are two alternatives here.
 *
 *		-L logfile		Specify full file path.
 *
 *		-l logdir		Daily names will be created here.
 *
 *		Use one or the other but not both.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

const auditHeader = "utime,isotime,from,to,input,output,error\n"

// Daily file names, UTC.  %F is avoided, not every strftime has it.
const dailyNameFormat = "%Y-%m-%d.log"

// AuditLog appends conversions to a CSV file.  The file is kept open
// between writes.
type AuditLog struct {
	mu         sync.Mutex
	dailyNames bool
	path       string // directory for daily names, otherwise the file
	fp         *os.File
	openName   string
	logger     *log.Logger
	now        func() time.Time
}

/*------------------------------------------------------------------
 *
 * Function:	OpenAuditLog
 *
 * Inputs:	dailyNames	- True if daily names should be generated.
 *				  In this case path is a directory.
 *				  When false, path would be the file name.
 *
 *		path		- Log file name or just directory.
 *				  Use "." for current directory.
 *				  Empty string disables the log.
 *
 * Description:	A missing directory is created, one level only.  If
 *		that fails, or path is not a directory, the current
 *		working directory is used instead.
 *
 *------------------------------------------------------------------*/

func OpenAuditLog(dailyNames bool, path string, logger *log.Logger) *AuditLog {
	if logger == nil {
		logger = log.Default()
	}

	var l = &AuditLog{
		dailyNames: dailyNames,
		logger:     logger,
		now:        time.Now,
	}

	if path == "" {
		return l
	}

	if !dailyNames {
		logger.Info("Log file", "path", path)
		l.path = path

		return l
	}

	var stat, statErr = os.Stat(path)
	switch {
	case statErr == nil && stat.IsDir():
		l.path = path
	case statErr == nil:
		logger.Error("Log file location is not a directory, using \".\" instead", "path", path)
		l.path = "."
	default:
		if err := os.Mkdir(path, 0755); err != nil {
			logger.Error("Failed to create log file location, using \".\" instead", "path", path, "err", err)
			l.path = "."
		} else {
			logger.Info("Log file location has been created", "path", path)
			l.path = path
		}
	}

	return l
}

// Write records one conversion.  A nil AuditLog, or one with no path,
// does nothing.
func (l *AuditLog) Write(from, to, input, output string, convErr error) error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path == "" {
		return nil
	}

	var now = l.now().UTC()

	if err := l.open(now); err != nil {
		return err
	}

	var errText = ""
	if convErr != nil {
		errText = convErr.Error()
	}

	var w = csv.NewWriter(l.fp)
	if err := w.Write([]string{
		strconv.FormatInt(now.Unix(), 10), now.Format("2006-01-02T15:04:05Z"),
		from, to, input, output, errText,
	}); err != nil {
		return fmt.Errorf("CSV write error: %w", err)
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("CSV write error: %w", err)
	}

	return nil
}

// open makes sure the right file is open for now, writing the header
// when the file is new.
func (l *AuditLog) open(now time.Time) error {
	var fullPath = l.path

	if l.dailyNames {
		var fname, err = strftime.Format(dailyNameFormat, now)
		if err != nil {
			return fmt.Errorf("log file name: %w", err)
		}

		// Close current file if name has changed
		if l.fp != nil && fname != l.openName {
			_ = l.closeLocked()
		}

		fullPath = filepath.Join(l.path, fname)
		l.openName = fname
	}

	if l.fp != nil {
		return nil
	}

	var _, statErr = os.Stat(fullPath)
	var alreadyThere = statErr == nil

	l.logger.Info("Opening log file", "path", fullPath)

	var f, err = os.OpenFile(fullPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		l.openName = ""
		return fmt.Errorf("can't open log file %s for write: %w", fullPath, err)
	}

	l.fp = f

	// Header for importing into a spreadsheet, only on the first line.
	if !alreadyThere {
		if _, err := l.fp.WriteString(auditHeader); err != nil {
			return fmt.Errorf("write log header: %w", err)
		}
	}

	return nil
}

// Close closes any open log file.
func (l *AuditLog) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.closeLocked()
}

func (l *AuditLog) closeLocked() error {
	if l.fp == nil {
		return nil
	}

	l.logger.Info("Closing log file", "path", l.fp.Name())

	var err = l.fp.Close()
	l.fp = nil
	l.openName = ""

	return err
}
