package cache

// RequestCacher keeps the newest entries of a list per key, newest first.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
