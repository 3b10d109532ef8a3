// Package pagemark extracts the main article content from noisy HTML and
// renders it as structured markdown with a metadata header. It identifies
// the content subtree with a multi-signal scoring pipeline, decomposes it
// into typed chunks, and strips residual boilerplate from the rendered text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package pagemark
