package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gridconv "github.com/doismellburning/gridconv/src"
)

// pflag assumes it only ever gets called once.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func Example_main() {
	setupPflag([]string{"gridconv", "-f", "DD", "-t", "MGRS", "9.1977,12.6543", "-9.1977,12.6543"})

	main()
	// Output:
	// 33P TL 42247 17553
	// 33L TK 42247 82446
}

func Example_main_southWest() {
	setupPflag([]string{"gridconv", "-t", "DMS", "-33.8688,-151.2093", "-.5,-0.25"})

	main()
	// Output:
	// 33°52′08″S, 151°12′33″W
	// 00°30′00″S, 000°15′00″W
}

func Example_main_dms() {
	setupPflag([]string{"gridconv", "--from", "dms", "--to", "dd", "09°11′51″N, 012°39′15″E"})

	main()
	// Output: 9.1975, 12.6542
}

func Test_Batch(t *testing.T) {
	setupPflag([]string{"gridconv", "-f", "MGRS", "-t", "DMS"})

	gridconv.AssertOutputContains(t, func() {
		gridconv.WithStdin(t, "33P TL 42247 17553\n\n33PTL4224717553\n", main)
	}, "09°11′52″N, 012°39′15″E\n09°11′52″N, 012°39′15″E\n")
}

func Test_AuditLog(t *testing.T) {
	var logFile = filepath.Join(t.TempDir(), "audit.csv")

	setupPflag([]string{"gridconv", "-L", logFile, "-t", "DMS", "9.1977,12.6543"})

	var out = gridconv.CaptureOutput(t, main)
	assert.Equal(t, "09°11′52″N, 012°39′15″E\n", out)

	var data, err = os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "utime,isotime,from,to,input,output,error\n")
	assert.Contains(t, string(data), `,DD,DMS,"9.1977,12.6543","09°11′52″N, 012°39′15″E",`)
}
