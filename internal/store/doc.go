// Package store defines the interfaces of the four record stores and the
// errors they share. Each store exclusively owns one collection; the
// interfaces keep use cases independent of how the collections are held,
// so services can be tested against mocks and the in-memory
// implementations stay swappable.
//
// Stores perform no I/O. They are not safe for concurrent use; callers that
// add concurrency must serialize access externally.
package store
