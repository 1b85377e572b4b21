package gridconv

/*------------------------------------------------------------------
 *
 * Purpose:	Transverse Mercator on an arbitrary ellipsoid, for
 *		the ellipsoids coordconv doesn't cover.
 *
 * Description:	Krüger series to sixth order in the third
 *		flattening n, as given by Karney, "Transverse Mercator
 *		with an accuracy of a few nanometers", J. Geodesy 85
 *		(2011).  Good to well under a millimetre across a
 *		UTM zone.
 *
 *------------------------------------------------------------------*/

import "math"

const (
	utmScale         = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0
)

type kruger struct {
	e     float64    // eccentricity
	a     float64    // rectifying radius
	alpha [7]float64 // forward series, 1-based
	beta  [7]float64 // inverse series, 1-based
}

func newKruger(ell Ellipsoid) kruger {
	var f = ell.Flattening()
	var n = f / (2 - f)
	var n2 = n * n
	var n3 = n2 * n
	var n4 = n3 * n
	var n5 = n4 * n
	var n6 = n5 * n

	var k kruger
	k.e = math.Sqrt(f * (2 - f))
	k.a = ell.SemiMajorAxis / (1 + n) * (1 + n2/4 + n4/64 + n6/256)

	k.alpha = [7]float64{0,
		n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 + 7891*n6/37800,
		13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 - 1983433*n6/1935360,
		61*n3/240 - 103*n4/140 + 15061*n5/26880 + 167603*n6/181440,
		49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600,
		34729*n5/80640 - 3418889*n6/1995840,
		212378941 * n6 / 319334400,
	}

	k.beta = [7]float64{0,
		n/2 - 2*n2/3 + 37*n3/96 - n4/360 - 81*n5/512 + 96199*n6/604800,
		n2/48 + n3/15 - 437*n4/1440 + 46*n5/105 - 1118711*n6/3870720,
		17*n3/480 - 37*n4/840 - 209*n5/4480 + 5569*n6/90720,
		4397*n4/161280 - 11*n5/504 - 830251*n6/7257600,
		4583*n5/161280 - 108847*n6/3991680,
		20648693 * n6 / 638668800,
	}

	return k
}

func centralMeridian(zone int) float64 {
	return float64((zone-1)*6 - 180 + 3)
}

// forward projects lat/lng (degrees) into the zone, giving easting and
// northing in metres.
func (k kruger) forward(lat, lng float64, zone int, south bool) (float64, float64) {
	var phi = lat * math.Pi / 180
	var lambda = (lng - centralMeridian(zone)) * math.Pi / 180

	var tau = math.Sinh(math.Atanh(math.Sin(phi)) - k.e*math.Atanh(k.e*math.Sin(phi)))
	var xiP = math.Atan2(tau, math.Cos(lambda))
	var etaP = math.Atanh(math.Sin(lambda) / math.Sqrt(1+tau*tau))

	var xi = xiP
	var eta = etaP
	for j := 1; j <= 6; j++ {
		var jj = float64(2 * j)
		xi += k.alpha[j] * math.Sin(jj*xiP) * math.Cosh(jj*etaP)
		eta += k.alpha[j] * math.Cos(jj*xiP) * math.Sinh(jj*etaP)
	}

	var easting = utmFalseEasting + utmScale*k.a*eta
	var northing = utmScale * k.a * xi
	if south {
		northing += utmFalseNorthing
	}

	return easting, northing
}

// inverse is the reverse of forward, giving lat/lng in degrees.
func (k kruger) inverse(easting, northing float64, zone int, south bool) (float64, float64) {
	if south {
		northing -= utmFalseNorthing
	}

	var x = (easting - utmFalseEasting) / (utmScale * k.a)
	var y = northing / (utmScale * k.a)

	var xiP = y
	var etaP = x
	for j := 1; j <= 6; j++ {
		var jj = float64(2 * j)
		xiP -= k.beta[j] * math.Sin(jj*y) * math.Cosh(jj*x)
		etaP -= k.beta[j] * math.Cos(jj*y) * math.Sinh(jj*x)
	}

	var sinhEtaP = math.Sinh(etaP)
	var sinXiP = math.Sin(xiP)
	var cosXiP = math.Cos(xiP)

	var tauP = sinXiP / math.Sqrt(sinhEtaP*sinhEtaP+cosXiP*cosXiP)

	// Newton-Raphson for the geodetic tau.
	var e2 = k.e * k.e
	var tau = tauP
	for i := 0; i < 20; i++ {
		var sigma = math.Sinh(k.e * math.Atanh(k.e*tau/math.Sqrt(1+tau*tau)))
		var tauI = tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
		var delta = (tauP - tauI) / math.Sqrt(1+tauI*tauI) *
			(1 + (1-e2)*tau*tau) / ((1 - e2) * math.Sqrt(1+tau*tau))
		tau += delta
		if math.Abs(delta) <= 1e-12 {
			break
		}
	}

	var lat = math.Atan(tau) * 180 / math.Pi
	var lng = math.Atan2(sinhEtaP, cosXiP)*180/math.Pi + centralMeridian(zone)

	return lat, lng
}
