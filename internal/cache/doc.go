// Package cache provides a file-based cache for provider model lists.
//
// Each provider gets one JSON entry holding its model names, a creation
// timestamp, and a TTL in seconds. Expired entries are dropped on read.
// The default cache directory is $XDG_CACHE_HOME/aicr (or the
// OS-appropriate equivalent).
package cache
