package util

import (
	"crypto/rand"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

/*
 * decoy file helpers: scan a folder for usable carrier images and
 * pick one at random.
 */

func RandInt( max int ) int {
	if max <= 0 {
		return 0
	}
	limit := big.NewInt( int64(max) )
	integer, err := rand.Int( rand.Reader, limit )
	if err != nil {
		return 0
	}
	return int(integer.Int64())
}

func ReadFiles( folder string, supportedExtensions []string ) ([]string, error) {
	allFiles, err := os.ReadDir( folder )
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		for _, ext := range supportedExtensions {
			if strings.HasSuffix( f.Name(), "." + ext ) {
				result = append( result, filepath.Join( folder, f.Name() ) )
			}
		}
	}
	return result, nil
}

func PickFileAtRandom( files []string ) (string, []string) {
	if len(files) == 0 {
		return "", nil
	}
	idx := RandInt( len(files) )
	file := files[idx]
	files = append( files[:idx], files[idx+1:]... )
	return file, files
}
