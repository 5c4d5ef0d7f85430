/*
Package rgba provides an immutable 8-bit per channel RGBA color value,
clamped float constructors, a small named palette and an approximation of
the visible color of an ideal black body.

Constructor example:

	c := rgba.RGB24(0xff8000)
	f := rgba.RGBFloat64(1.0, 0.5, 0.0) // channels truncate: 255, 127, 0
	_ = c == f

Black body example:

	sun := rgba.BlackBody(5778)
	_ = sun.Float32Array()

The alpha channel of BlackBody carries the unnormalized visible radiance
and is 255 for most temperatures; use BlackBodyBands for the raw band
means.

Check example:

	issues := rgba.CheckBlackBody(kelvin, nil)
	if rgba.HasErrors(issues) {
		// handle invalid temperature
	}

Encoding example:

	s := rgba.Format(rgba.Grey, &rgba.FormatOptions{OmitOpaqueAlpha: true}) // "#7f7f7f"
	c, err := rgba.Parse(s)
	if err != nil {
		// handle error
	}

Color encodes to JSON and YAML as the sequence [r, g, b, a], to BSON as
a document with keys r, g, b, a and to binary as exactly 4 bytes.
*/
package rgba
