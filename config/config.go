package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"pixveil/steg"
	"pixveil/util"
)

/*
 * Default traversal options applied to hide/reveal when the command
 * line does not override them. Channel and start position are kept as
 * strings in the file and parsed into steg values on demand.
 */
type EncodeDefaults struct {
	BitsPerPixel	int	`yaml:"bits_per_pixel"`
	Channel		string	`yaml:"channel"`
	PixelOffset	int	`yaml:"pixel_offset"`
	PixelStride	int	`yaml:"pixel_stride"`
	Start		string	`yaml:"start_position"`
	Spread		bool	`yaml:"spread"`
	Marker		string	`yaml:"marker"`
}

/*
 * Configuration for steganography carriers. Currently contains only
 * the folder with decoy files.
 */
type SteganoConfig struct {
	Folder		string	`yaml:"decoy_files_folder"`
}

type FullConfig struct {
	Defaults	EncodeDefaults	`yaml:"encode_defaults"`
	StegConfig	SteganoConfig	`yaml:"steganography_config"`
	Logger		util.LoggerInfo	`yaml:"logger_config"`
}

// Options resolves the file's string fields into a steg.Options value.
func (d EncodeDefaults) Options() (steg.Options, error) {
	opts := steg.DefaultOptions()
	if d.BitsPerPixel != 0 {
		opts.BitsPerPixel = d.BitsPerPixel
	}
	if d.Channel != "" {
		channel, err := steg.ParseChannel( d.Channel )
		if err != nil {
			return opts, err
		}
		opts.Channel = channel
	}
	opts.PixelOffset = d.PixelOffset
	if d.PixelStride != 0 {
		opts.PixelStride = d.PixelStride
	}
	if d.Start != "" {
		start, err := steg.ParseStart( d.Start )
		if err != nil {
			return opts, err
		}
		opts.Start = start
	}
	opts.Spread = d.Spread
	if d.Marker != "" {
		opts.Marker = []byte(d.Marker)
	}
	return opts, nil
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Defaults: EncodeDefaults{
			BitsPerPixel: 1,
			Channel: "blue",
			PixelStride: 1,
			Start: "topleft",
		},
		StegConfig: SteganoConfig{
			Folder: "",
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
