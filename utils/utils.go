package utils

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

func BytesToLength(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// HexColor formats 8-bit channels as #rrggbb.
func HexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CreateTextFile creates name (and any missing parent directories) and
// writes text to it.
func CreateTextFile(name string, text string) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(file, text)
	if err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
