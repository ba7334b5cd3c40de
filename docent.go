// Package docent provides a conversational documentation assistant.
// It decides whether a user turn needs a reference to be ingested or a
// document to be extracted, drives that work against a remote knowledge
// service, asks the question and keeps each conversation in a durable
// session store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, gemini/).
package docent
