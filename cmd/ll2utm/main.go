/* Latitude / Longitude to UTM conversion */
package main

import (
	"fmt"
	"os"
	"strconv"

	gridconv "github.com/doismellburning/gridconv/src"
)

func main() {
	if len(os.Args) != 3 {
		usage()
		return
	}

	var lat, latErr = strconv.ParseFloat(os.Args[1], 64)
	var lon, lonErr = strconv.ParseFloat(os.Args[2], 64)
	if latErr != nil || lonErr != nil {
		usage()
		return
	}

	var cfg, cfgErr = gridconv.LoadConfig("")
	if cfgErr != nil {
		fmt.Printf("%s\n", cfgErr)
		os.Exit(1)
	}

	var conv, convErr = cfg.Converter(nil)
	if convErr != nil {
		fmt.Printf("%s\n", convErr)
		os.Exit(1)
	}

	// UTM

	var pos, utmErr = conv.ToGrid(lat, lon)
	if utmErr == nil {
		fmt.Printf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n", pos.Zone, pos.Hemisphere(), pos.Easting, pos.Northing)
	} else {
		fmt.Printf("Conversion to UTM failed:\n%s\n\n", utmErr)

		// Others could still succeed, keep going.
	}

	// Practice run with MGRS to see if it will succeed

	var _, mgrsErr = gridconv.MGRSAt(lat, lon, cfg.Precision)
	if mgrsErr == nil {
		fmt.Printf("MGRS =")

		for precision := 1; precision <= cfg.Precision; precision++ {
			var mgrs, _ = gridconv.MGRSAt(lat, lon, precision)
			fmt.Printf("  %s", mgrs)
		}

		fmt.Printf("\n")
	} else {
		fmt.Printf("Conversion to MGRS failed:\n%s\n", mgrsErr)
	}
}

func usage() {
	fmt.Printf("Latitude / Longitude to UTM conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2utm  latitude  longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees.\n")
	fmt.Printf("\t   Use negative for south or west.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2utm 42.662139 -71.365553\n")
}
