package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Convert coordinates between decimal degrees (DD),
 *		degrees minutes seconds (DMS) and MGRS.
 *
 *---------------------------------------------------------------*/

import (
	gridconv "github.com/doismellburning/gridconv/src"
)

func main() {
	gridconv.GridconvMain()
}
