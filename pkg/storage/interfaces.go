package storage

import "io"

// Storage persists uploaded photo binaries. Save returns the stored
// location (local path or object key) that goes into the photo record.
type Storage interface {
	Save(key string, src io.Reader) (string, error)
	Delete(key string) error
	PublicURL(key string) string
}
