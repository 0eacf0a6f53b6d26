// Package models defines the core domain models for Circle+.
//
// Every entity mirrors a document in one of the backing collections
// (users, circles, circle_members, posts, chat_messages). Relationships
// are expressed through ID strings rather than pointers; the store is the
// sole source of truth and nothing here enforces referential integrity.
//
// Counter fields (members_count, posts_count, followers_count, ...) are
// written at creation and carried as-is afterwards. They are display
// values, not reconciled aggregates.
//
// Timestamps are Unix milliseconds assigned by the store at insert time
// (server-timestamp semantics).
package models
