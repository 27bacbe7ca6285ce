// Package cache holds the in-process caches used to memoize loaded tables.
package cache

// Cache is a string-keyed store.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
	Size() int
}

// Cleaner is implemented by caches whose entries can expire.
type Cleaner interface {
	CleanExpired() int
}
