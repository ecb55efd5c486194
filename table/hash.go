package table

import (
	"bytes"
	"crypto/sha256"

	"github.com/minio/highwayhash"
)

// checksumKey is the 32-byte highway hash key shared by every csvmerge digest
var checksumKey = sha256.Sum256([]byte("github.com/viant/csvmerge/table"))

// Checksum returns 64-bit highway hash of encoded table data
func Checksum(data []byte) uint64 {
	return highwayhash.Sum64(data, checksumKey[:])
}

// Digest returns the checksum of the table CSV encoding
func Digest(t *Table, missingValue string) (uint64, error) {
	buf := new(bytes.Buffer)
	if err := Write(buf, t, missingValue); err != nil {
		return 0, err
	}
	return Checksum(buf.Bytes()), nil
}
