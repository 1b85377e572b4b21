package gridconv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

/*------------------------------------------------------------------
 *
 * Name: 	GridconvMain
 *
 * Purpose:   	Convert coordinates given on the command line, or one
 *		per line from stdin.
 *
 * Usage:	gridconv -f DD -t MGRS "9.1977,12.6543"
 *
 *		echo "33P TL 42247 17553" | gridconv -f MGRS -t DMS
 *
 *---------------------------------------------------------------*/

func GridconvMain() {
	var _from = pflag.StringP("from", "f", "DD", "Notation of the input: DD, DMS or MGRS.")
	var _to = pflag.StringP("to", "t", "MGRS", "Notation to convert to: DD, DMS or MGRS.")
	var _configFile = pflag.StringP("config", "c", "", "Configuration file.  Default is to search for gridconv.yaml.")
	var _logLevel = pflag.String("log-level", "", "Log level: debug, info, warn or error.")
	var _timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede output lines with 'strftime' format time stamp.")
	var _logDir = pflag.StringP("log-dir", "l", "", "Directory for daily audit log files.")
	var _logFile = pflag.StringP("log-file", "L", "", "Audit log file name.")
	var version = pflag.BoolP("version", "v", false, "Display version and exit.  With --log-level=debug, also show build details.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Convert between DD, DMS and MGRS.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [value ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "With no values, one value per line is read from stdin.\n")
		fmt.Fprintf(os.Stderr, "Options go before the values.  A value may start with '-', e.g. -9.1977,12.6543.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	// "-9.1977,12.6543" would otherwise be read as a shorthand flag.
	if err := pflag.CommandLine.Parse(negativeValuesAsArgs(os.Args[1:])); err != nil {
		os.Exit(2)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion(os.Stdout, *_logLevel == "debug")
		os.Exit(0)
	}

	if *_logDir != "" && *_logFile != "" {
		fmt.Fprintf(os.Stderr, "Use -l or -L but not both.\n")
		os.Exit(1)
	}

	var cfg, cfgErr = LoadConfig(*_configFile)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", cfgErr)
		os.Exit(1)
	}

	if *_logLevel != "" {
		cfg.LogLevel = *_logLevel
	}

	if *_timestampFormat != "" {
		cfg.TimestampFormat = *_timestampFormat
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	var level, _ = log.ParseLevel(cfg.LogLevel)
	var logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gridconv",
		Level:  level,
	})

	var conv, convErr = cfg.Converter(logger)
	if convErr != nil {
		logger.Fatal("can't build converter", "err", convErr)
	}

	var audit *AuditLog
	if *_logDir != "" {
		audit = OpenAuditLog(true, *_logDir, logger)
	} else if *_logFile != "" {
		audit = OpenAuditLog(false, *_logFile, logger)
	}

	var b = &batch{
		conv:            conv,
		from:            *_from,
		to:              *_to,
		timestampFormat: cfg.TimestampFormat,
		audit:           audit,
		logger:          logger,
		now:             time.Now,
	}

	var failures int
	if pflag.NArg() > 0 {
		for _, value := range pflag.Args() {
			if !b.convert(os.Stdout, value) {
				failures++
			}
		}
	} else {
		failures = b.run(os.Stdout, os.Stdin)
	}

	if err := audit.Close(); err != nil {
		logger.Error("closing log file", "err", err)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// negativeValuesAsArgs puts "--" ahead of the first argument that looks
// like a negative number, so it and everything after it are values.
func negativeValuesAsArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if len(arg) > 1 && arg[0] == '-' && (arg[1] == '.' || (arg[1] >= '0' && arg[1] <= '9')) {
			var out = make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")

			return append(out, args[i:]...)
		}
	}

	return args
}

// batch converts a stream of values with fixed notations.
type batch struct {
	conv            *Converter
	from, to        string
	timestampFormat string
	audit           *AuditLog
	logger          *log.Logger
	now             func() time.Time
}

// run converts each non-blank line of r, giving the number that failed.
func (b *batch) run(w io.Writer, r io.Reader) int {
	var failures = 0

	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var value = strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}

		if !b.convert(w, value) {
			failures++
		}
	}

	if err := scanner.Err(); err != nil {
		b.logger.Error("reading input", "err", err)
		failures++
	}

	return failures
}

// convert writes one result line.  A failure is written as "error: ..." so
// output lines stay in step with input lines.
func (b *batch) convert(w io.Writer, value string) bool {
	var out, err = b.conv.Convert(b.from, b.to, value)

	if auditErr := b.audit.Write(strings.ToUpper(b.from), strings.ToUpper(b.to), value, out, err); auditErr != nil {
		b.logger.Error("audit log", "err", auditErr)
	}

	var prefix = ""
	if b.timestampFormat != "" {
		var ts, tsErr = strftime.Format(b.timestampFormat, b.now())
		if tsErr != nil {
			b.logger.Warn("bad timestamp format", "format", b.timestampFormat, "err", tsErr)
		} else {
			prefix = ts + " "
		}
	}

	if err != nil {
		fmt.Fprintf(w, "%serror: %s\n", prefix, err)
		return false
	}

	fmt.Fprintf(w, "%s%s\n", prefix, out)

	return true
}
