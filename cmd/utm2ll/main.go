/* UTM to Latitude / Longitude conversion */
package main

import (
	"fmt"
	"os"
	"strconv"

	gridconv "github.com/doismellburning/gridconv/src"
)

func main() {
	if len(os.Args) != 4 && len(os.Args) != 2 {
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

	if len(os.Args) == 4 {
		// 3 command line arguments for UTM

		var zone, south, zoneErr = gridconv.ParseUTMZone(os.Args[1])
		if zoneErr != nil {
			fmt.Printf("%s\n", zoneErr)
			usage()
			return
		}

		var easting, eastingErr = strconv.ParseFloat(os.Args[2], 64)
		var northing, northingErr = strconv.ParseFloat(os.Args[3], 64)
		if eastingErr != nil || northingErr != nil {
			usage()
			return
		}

		var p, err = conv.FromUTM(zone, south, easting, northing)
		if err != nil {
			fmt.Printf("Conversion from UTM failed:\n%s\n\n", err)
			os.Exit(1)
		}

		fmt.Printf("from UTM, latitude = %.6f, longitude = %.6f\n", p.Latitude, p.Longitude)

		return
	}

	// One command line argument, MGRS.

	var p, err = conv.FromMGRS(os.Args[1])
	if err != nil {
		fmt.Printf("Conversion from MGRS failed:\n%s\n\n", err)
		os.Exit(1)
	}

	fmt.Printf("from MGRS, latitude = %.6f, longitude = %.6f\n", p.Latitude, p.Longitude)
}

func usage() {
	fmt.Println("UTM to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tutm2ll  zone  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tzone is UTM zone 1 thru 60 with optional latitudinal band.")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("or:")
	fmt.Println("\tutm2ll  x")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tx is an MGRS location.")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("\tutm2ll 19T 306130 4726010")
	fmt.Println("\tutm2ll 19TCH06132600")
}
