package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pixveil/codec"
	"pixveil/config"
	"pixveil/steg"
	"pixveil/util"
)

const (
	PixveilFolder = ".pixveil"
	ConfigFilename = "config.yaml"
)

var carrierExtensions = []string{ "png", "bmp", "jpg", "jpeg", "gif" }

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf := loadConfigOrDefault()
	logger := util.NewLogger( &conf.Logger )

	switch os.Args[1] {
	case "hide":
		if err := runHide( conf, logger, os.Args[2:] ); err != nil {
			fatal( "Failed to hide data:", err )
		}
	case "reveal":
		if err := runReveal( conf, logger, os.Args[2:] ); err != nil {
			fatal( "Failed to reveal data:", err )
		}
	case "capacity":
		if err := runCapacity( conf, os.Args[2:] ); err != nil {
			fatal( "Failed to compute capacity:", err )
		}
	case "genconf":
		path := defaultConfigPath()
		if len( os.Args ) > 2 {
			path = os.Args[2]
		}
		if err := os.MkdirAll( filepath.Dir( path ), 0700 ); err != nil {
			fatal( "Failed to create configuration directory:", err )
		}
		if err := config.SaveConfig( path, config.DefaultConfig() ); err != nil {
			fatal( "Failed to save default configuration:", err )
		}
		fmt.Println( "Configuration written to", path )
	default:
		help()
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFilename
	}
	return filepath.Join( home, PixveilFolder, ConfigFilename )
}

func loadConfigOrDefault() *config.FullConfig {
	conf, err := config.LoadConfig( defaultConfigPath() )
	if err != nil {
		return config.DefaultConfig()
	}
	return conf
}

/*
 * shared traversal flags for hide/reveal/capacity. Values default to
 * whatever the configuration file says.
 */
type optionFlags struct {
	bits	*int
	channel	*string
	offset	*int
	stride	*int
	start	*string
	spread	*bool
	marker	*string
}

func registerOptionFlags( fs *flag.FlagSet, d config.EncodeDefaults ) *optionFlags {
	return &optionFlags{
		bits: fs.Int( "bits", d.BitsPerPixel, "bits embedded per pixel (1-8)" ),
		channel: fs.String( "channel", d.Channel, "color channel: red, green or blue" ),
		offset: fs.Int( "offset", d.PixelOffset, "pixels to skip before the first write" ),
		stride: fs.Int( "stride", d.PixelStride, "visit every n-th pixel" ),
		start: fs.String( "start", d.Start, "start position: topleft, topright, bottomleft, bottomright, center or x,y" ),
		spread: fs.Bool( "spread", d.Spread, "wrap around and reuse leading pixels when the image is too small" ),
		marker: fs.String( "marker", d.Marker, "terminator byte sequence" ),
	}
}

// resolve funnels the flag values through the same resolution the
// configuration file uses. Flags default to the file's values, so
// anything given on the command line overrides it.
func (f *optionFlags) resolve() (steg.Options, error) {
	d := config.EncodeDefaults{
		BitsPerPixel: *f.bits,
		Channel: *f.channel,
		PixelOffset: *f.offset,
		PixelStride: *f.stride,
		Start: *f.start,
		Spread: *f.spread,
		Marker: *f.marker,
	}
	return d.Options()
}

func runHide( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	fs := flag.NewFlagSet( "hide", flag.ExitOnError )
	in := fs.String( "in", "", "carrier image (random decoy from the configured folder when empty)" )
	dataFile := fs.String( "data", "", "file with the payload to embed" )
	text := fs.String( "text", "", "payload given directly as text" )
	out := fs.String( "out", "", "output image path" )
	format := fs.String( "format", "", "output format: png, bmp or jpeg (guessed from -out when empty)" )
	of := registerOptionFlags( fs, conf.Defaults )
	fs.Parse( args )

	opts, err := of.resolve()
	if err != nil {
		return err
	}

	payload, err := readPayload( *dataFile, *text )
	if err != nil {
		return err
	}
	// the marker is appended to the payload so that reveal can stop
	// on it later
	payload = append( payload, opts.Marker... )

	carrierPath := *in
	if carrierPath == "" {
		carrierPath, err = pickDecoy( conf.StegConfig.Folder )
		if err != nil {
			return err
		}
		logger.LogInfo( "Using decoy file " + carrierPath )
	}
	carrier, err := os.ReadFile( carrierPath )
	if err != nil {
		return err
	}

	outPath := *out
	if outPath == "" {
		outPath = outputName( carrierPath )
	}
	outFormat, err := resolveFormat( *format, outPath )
	if err != nil {
		return err
	}

	if outFormat == codec.Jpeg {
		// pixel LSBs do not survive JPEG re-encoding; embed in the
		// coefficient domain instead
		logger.LogWarning( "JPEG output: traversal options are ignored, using coefficient embedding" )
		encoded, err := codec.HideJpeg( carrier, payload )
		if err != nil {
			return err
		}
		if err = os.WriteFile( outPath, encoded, 0600 ); err != nil {
			return err
		}
		fmt.Printf( "Embedded %d bytes into %s\n", len(payload), outPath )
		return nil
	}

	result, err := steg.EncodeBytes( payload, carrier, opts )
	if err != nil {
		return err
	}
	if err = result.Save( outPath, outFormat ); err != nil {
		return err
	}
	logger.LogInfo( fmt.Sprintf( "%d pixels changed", result.PixelsChanged() ) )
	fmt.Printf( "Embedded %d bytes into %s\n", len(payload), outPath )
	return nil
}

func runReveal( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	fs := flag.NewFlagSet( "reveal", flag.ExitOnError )
	in := fs.String( "in", "", "image to extract data from" )
	out := fs.String( "out", "", "write raw payload bytes to this file instead of stdout" )
	asText := fs.Bool( "text", false, "print the payload as normalized text" )
	trim := fs.Bool( "trim", false, "strip the marker from the payload when it was hit" )
	of := registerOptionFlags( fs, conf.Defaults )
	fs.Parse( args )

	if *in == "" {
		return fmt.Errorf("No input image given.")
	}
	carrier, err := os.ReadFile( *in )
	if err != nil {
		return err
	}

	opts, err := of.resolve()
	if err != nil {
		return err
	}

	var data []byte
	if codec.IsJpeg( carrier ) {
		// JPEG carriers hold their payload in the coefficient domain
		data, err = codec.RevealJpeg( carrier )
		if err != nil {
			return err
		}
	} else {
		result, err := steg.DecodeBytes( carrier, opts )
		if err != nil {
			return err
		}
		logger.LogInfo( fmt.Sprintf( "Extracted %d bytes in %s, hit marker: %v",
			len(result.Data()), result.Elapsed(), result.HitMarker() ) )
		if *trim {
			data = result.DataTrimmed()
		} else {
			data = result.Data()
		}
	}

	if *out != "" {
		return os.WriteFile( *out, data, 0600 )
	}
	if *asText {
		fmt.Println( util.FixUnicode( string(data) ) )
		return nil
	}
	os.Stdout.Write( data )
	return nil
}

func runCapacity( conf *config.FullConfig, args []string ) error {

	fs := flag.NewFlagSet( "capacity", flag.ExitOnError )
	in := fs.String( "in", "", "carrier image to measure" )
	of := registerOptionFlags( fs, conf.Defaults )
	fs.Parse( args )

	if *in == "" {
		return fmt.Errorf("No input image given.")
	}
	carrier, err := os.ReadFile( *in )
	if err != nil {
		return err
	}

	opts, err := of.resolve()
	if err != nil {
		return err
	}

	if codec.IsJpeg( carrier ) {
		capacity, err := codec.JpegCapacity( carrier )
		if err != nil {
			return err
		}
		fmt.Printf( "%d bytes (coefficient domain)\n", capacity )
		return nil
	}

	buf, err := steg.LoadImage( carrier )
	if err != nil {
		return err
	}
	fmt.Printf( "%d bytes\n", steg.Capacity( opts, buf.Width(), buf.Height() ) )
	return nil
}

func readPayload( dataFile, text string ) ([]byte, error) {
	if dataFile != "" {
		return os.ReadFile( dataFile )
	}
	if text != "" {
		return []byte(text), nil
	}
	return nil, fmt.Errorf("Nothing to embed: pass -data or -text.")
}

func pickDecoy( folder string ) (string, error) {
	if folder == "" {
		return "", fmt.Errorf("No carrier image given and no decoy folder configured.")
	}
	files, err := util.ReadFiles( folder, carrierExtensions )
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("No usable decoy files in %s", folder)
	}
	file, _ := util.PickFileAtRandom( files )
	return file, nil
}

func outputName( carrierPath string ) string {
	ext := filepath.Ext( carrierPath )
	return strings.TrimSuffix( carrierPath, ext ) + "_out.png"
}

func resolveFormat( format, outPath string ) (codec.Format, error) {
	if format != "" {
		return codec.ParseFormat( format )
	}
	ext := strings.TrimPrefix( filepath.Ext( outPath ), "." )
	if ext == "" {
		return codec.Png, nil
	}
	return codec.ParseFormat( ext )
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./pixveil <command> [arguments]

The following commands are supported:
	hide		embed a payload into a carrier image
	reveal		extract a payload from an image
	capacity	report how many bytes an image can carry
	genconf		write the default configuration file

Run a command with -h to list its flags.
`

	fmt.Printf( "%s", line )
}
