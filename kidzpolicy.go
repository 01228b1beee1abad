// Package kidzpolicy provides a local, CLI-based policy reference tool for
// the Redefine Church Kidz Ministry volunteer team. It embeds the ministry
// policy corpus, ranks policies against natural language questions, and
// synthesizes short answers either through a remote text-generation service
// or a fully local degrade path.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, bloom/).
package kidzpolicy
