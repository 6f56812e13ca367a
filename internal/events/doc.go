// Package events announces book and author changes to other processes.
//
// Every successful create, replace, patch or delete in the service layer
// produces one [Event]. With a redis address configured the events are
// JSON-encoded and appended to a redis list that consumers pop from;
// without one they are dropped by the no-op publisher.
//
// Publishing never fails the request that caused it: errors are logged
// and swallowed by the caller.
package events
