package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// A DataCorruptionError reports that the concatenated IDAT payload is not a
// valid zlib stream.
type DataCorruptionError struct {
	Err error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("compression: corrupt zlib data: %v", e.Err)
}

func (e *DataCorruptionError) Unwrap() error {
	return e.Err
}

// InflateData decompresses a complete zlib stream.
func InflateData(compressedData []byte) ([]byte, error) {
	reader := bytes.NewReader(compressedData)

	zlibReader, err := zlib.NewReader(reader)
	if err != nil {
		return nil, &DataCorruptionError{Err: err}
	}
	defer zlibReader.Close()
	var decompressedData bytes.Buffer
	_, err = io.Copy(&decompressedData, zlibReader)
	if err != nil {
		return nil, &DataCorruptionError{Err: err}
	}
	return decompressedData.Bytes(), nil
}

// DeflateData compresses data into a zlib stream. The decoder never needs it;
// it exists so fixtures can be built from raw scanlines.
func DeflateData(data []byte) ([]byte, error) {
	var compressed bytes.Buffer
	zlibWriter := zlib.NewWriter(&compressed)
	if _, err := zlibWriter.Write(data); err != nil {
		zlibWriter.Close()
		return nil, err
	}
	if err := zlibWriter.Close(); err != nil {
		return nil, err
	}
	return compressed.Bytes(), nil
}
